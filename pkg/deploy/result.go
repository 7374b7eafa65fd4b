// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

type Status int

const (
	StatusCompleted Status = iota
	StatusCancelled
)

func (s Status) String() string {
	if s == StatusCancelled {
		return "cancelled"
	}
	return "completed"
}

// Result of one deployment. Failures are returned as errors instead.
type Result struct {
	Status Status
	// Network is the configuration entry the deploy command ran against.
	Network string
	// Output of the deploy command.
	Output string
}

func cancelled() Result {
	return Result{Status: StatusCancelled}
}
