// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/shirou/gopsutil/process"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrLocalChainNotRunning = errors.New("local chain is not running")
	ErrPortInUse            = errors.New("local chain is already running on another port")
)

// LocalChainInfo is the content of the local chain run file.
type LocalChainInfo struct {
	Pid     int    `json:"pid"`
	Port    int    `json:"port"`
	LogFile string `json:"logFile"`
}

// LocalChain starts and stops the local test chain backend. The backend
// is detached: it keeps running after the deployment ends.
type LocalChain struct {
	log     *zap.Logger
	fs      afero.Fs
	runDir  string
	command string

	// seams for tests
	startProcess func(name string, args []string, logFile string) (int, error)
	pidExists    func(pid int32) (bool, error)
	signal       func(pid int) error
	startupDelay time.Duration
}

func NewLocalChain(log *zap.Logger, fs afero.Fs, runDir, command string) *LocalChain {
	return &LocalChain{
		log:          log,
		fs:           fs,
		runDir:       runDir,
		command:      command,
		startProcess: startDetached,
		pidExists:    process.PidExists,
		signal:       interrupt,
		startupDelay: constants.LocalChainStartupDelay,
	}
}

func (l *LocalChain) runFile() string {
	return filepath.Join(l.runDir, constants.LocalChainRunFile)
}

func (l *LocalChain) readRunFile() (LocalChainInfo, error) {
	var info LocalChainInfo
	data, err := afero.ReadFile(l.fs, l.runFile())
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("failed unmarshalling local chain run file at %s: %w", l.runFile(), err)
	}
	if info.Pid == 0 {
		return info, fmt.Errorf("failed reading pid from run file at %s", l.runFile())
	}
	return info, nil
}

// Status returns the running backend, or ErrLocalChainNotRunning.
func (l *LocalChain) Status() (LocalChainInfo, error) {
	info, err := l.readRunFile()
	if errors.Is(err, os.ErrNotExist) {
		return LocalChainInfo{}, ErrLocalChainNotRunning
	}
	if err != nil {
		return LocalChainInfo{}, err
	}
	alive, err := l.pidExists(int32(info.Pid))
	if err != nil {
		return LocalChainInfo{}, err
	}
	if !alive {
		// stale run file from a crashed backend
		_ = l.fs.Remove(l.runFile())
		return LocalChainInfo{}, ErrLocalChainNotRunning
	}
	return info, nil
}

// Start launches the backend on port unless it is already running there.
func (l *LocalChain) Start(ctx context.Context, port int) (LocalChainInfo, error) {
	info, err := l.Status()
	switch {
	case err == nil && info.Port == port:
		l.log.Debug("local chain already running", zap.Int("pid", info.Pid), zap.Int("port", port))
		return info, nil
	case err == nil:
		return LocalChainInfo{}, fmt.Errorf("%w: pid %d listens on %d", ErrPortInUse, info.Pid, info.Port)
	case !errors.Is(err, ErrLocalChainNotRunning):
		return LocalChainInfo{}, err
	}

	fields := strings.Fields(l.command)
	if len(fields) == 0 {
		return LocalChainInfo{}, errors.New("local chain command is empty")
	}
	if err := l.fs.MkdirAll(l.runDir, constants.DefaultPerms755); err != nil {
		return LocalChainInfo{}, err
	}
	logFile := filepath.Join(l.runDir, constants.LocalChainLogName)
	args := append(fields[1:], "--port", strconv.Itoa(port))
	pid, err := l.startProcess(fields[0], args, logFile)
	if err != nil {
		return LocalChainInfo{}, fmt.Errorf("failed to start local chain: %w", err)
	}

	info = LocalChainInfo{Pid: pid, Port: port, LogFile: logFile}
	data, err := json.Marshal(&info)
	if err != nil {
		return LocalChainInfo{}, err
	}
	if err := afero.WriteFile(l.fs, l.runFile(), data, constants.WriteReadReadPerms); err != nil {
		l.log.Warn("could not write local chain process info to file", zap.Error(err))
	}
	ux.Logger.PrintToUser("Local chain started, pid: %d, port: %d, output at: %s", pid, port, logFile)

	select {
	case <-time.After(l.startupDelay):
	case <-ctx.Done():
		return info, ctx.Err()
	}
	return info, nil
}

func (l *LocalChain) Stop() error {
	info, err := l.Status()
	if err != nil {
		return err
	}
	if err := l.signal(info.Pid); err != nil {
		return fmt.Errorf("failed killing process with pid %d: %w", info.Pid, err)
	}
	if err := l.fs.Remove(l.runFile()); err != nil {
		return fmt.Errorf("failed removing run file %s: %w", l.runFile(), err)
	}
	return nil
}

func startDetached(name string, args []string, logFile string) (int, error) {
	out, err := os.Create(logFile)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// reap the child if it exits while we are still running
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

func interrupt(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("could not find process with pid %d: %w", pid, err)
	}
	return proc.Signal(os.Interrupt)
}
