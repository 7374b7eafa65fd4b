// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

# Mode Detection

Non-interactive mode is enabled when ANY of these is true:

  - DEPLOYER_NON_INTERACTIVE=1/true/yes/on environment variable
  - CI=1/true environment variable
  - the --non-interactive flag was given
  - stdin is not a TTY (piped/redirected/scripted)

In non-interactive mode every Capture method returns ErrNonInteractive.

# Cancellation

Leaving a prompt with Ctrl+C, Ctrl+D or Esc returns ErrCancelled. Deployment
code treats it as a cancelled result rather than a failure.

# Option Precedence

 1. Flags (--url=http://127.0.0.1:8545)
 2. Environment variables (DEPLOYER_PROJECT_DIR)
 3. Config file (~/.deployer/deployer.yaml)
 4. Defaults
 5. Prompts (only if interactive/TTY)

# Usage Pattern

	req := prompts.NewRequirements("deployer network add")
	req.Require(&name, prompts.MissingOpt{Flag: "--name", Prompt: "Network name"})
	req.RequireWithDefault(&url, prompts.MissingOpt{Flag: "--url", Prompt: "RPC URL"}, constants.LocalChainURL)
	if err := req.Resolve(app.Prompt); err != nil {
	    return err
	}
*/
package prompts
