package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/blsam/trackie/internal/constants"
)

var listProcessesFunc = ps.Processes

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	healthy := true

	storePath := ctx.Store.StorePath()
	if err := checkStoreWritable(storePath); err != nil {
		healthy = false
		fmt.Printf("FAIL store: %v\n", err)
	} else {
		fmt.Printf("ok   store: %s\n", storePath)
	}

	if _, err := ctx.Store.LoadSettings(); err != nil {
		healthy = false
		fmt.Printf("FAIL settings: %v\n", err)
	} else {
		fmt.Println("ok   settings: readable")
	}

	duplicates, err := countTrackieProcesses()
	switch {
	case err != nil:
		fmt.Printf("warn processes: %v\n", err)
	case duplicates > 1:
		healthy = false
		fmt.Printf("FAIL processes: %d %s processes running, concurrent writers can lose time spans\n", duplicates, constants.AppName)
	default:
		fmt.Println("ok   processes: no concurrent instance")
	}

	if !healthy {
		return fmt.Errorf("problems found")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStoreWritable(storePath string) error {
	dir := storePath
	if info, err := os.Stat(storePath); err != nil || !info.IsDir() {
		dir = filepath.Dir(storePath)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("store is not writable: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

func countTrackieProcesses() (int, error) {
	processes, err := listProcessesFunc()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range processes {
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	return count, nil
}
