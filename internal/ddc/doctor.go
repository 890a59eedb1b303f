//go:build !windows
// +build !windows

package ddc

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// CheckResult is the outcome of one environment check.
type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

// RunChecks diagnoses the environment the backend needs: the utility
// on the search path, accessible i2c device nodes, and the host OS for
// bug reports. Checks never abort each other; every result is
// reported.
func RunChecks(binary string) []CheckResult {
	if binary == "" {
		binary = DefaultBinary
	}
	return []CheckResult{
		checkBinary(binary),
		checkI2CDevices(),
		checkKernel(),
		checkDistribution(),
	}
}

func checkBinary(binary string) CheckResult {
	result := CheckResult{Name: binary + " on PATH"}
	path, err := exec.LookPath(binary)
	if err != nil {
		result.Detail = fmt.Sprintf("not found; install the '%s' package", binary)
		return result
	}
	result.OK = true
	result.Detail = path
	return result
}

func checkI2CDevices() CheckResult {
	result := CheckResult{Name: "i2c device access"}

	devices, err := filepath.Glob("/dev/i2c-*")
	if err != nil || len(devices) == 0 {
		result.Detail = "no /dev/i2c devices found; is the i2c-dev module loaded?"
		return result
	}

	accessible := 0
	for _, dev := range devices {
		if unix.Access(dev, unix.R_OK|unix.W_OK) == nil {
			accessible++
		}
	}

	result.Detail = fmt.Sprintf("%d of %d devices read-writable", accessible, len(devices))
	if accessible == 0 {
		result.Detail += "; add your user to the i2c group"
		return result
	}
	result.OK = true
	return result
}

func checkKernel() CheckResult {
	result := CheckResult{Name: "kernel"}

	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		result.Detail = fmt.Sprintf("uname failed: %v", err)
		return result
	}

	result.OK = true
	result.Detail = fmt.Sprintf("%s %s (%s)",
		nulTerminated(utsname.Sysname[:]),
		nulTerminated(utsname.Release[:]),
		nulTerminated(utsname.Machine[:]))
	return result
}

func checkDistribution() CheckResult {
	result := CheckResult{Name: "distribution"}

	name, err := readOSReleaseName()
	if err != nil {
		result.Detail = fmt.Sprintf("could not read /etc/os-release: %v", err)
		return result
	}
	result.OK = true
	result.Detail = name
	return result
}

// readOSReleaseName returns PRETTY_NAME from /etc/os-release, falling
// back to NAME and VERSION.
func readOSReleaseName() (string, error) {
	file, err := os.Open("/etc/os-release")
	if err != nil {
		return "", err
	}
	defer file.Close()

	var name, version string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		switch strings.TrimSpace(key) {
		case "PRETTY_NAME":
			return value, nil
		case "NAME":
			name = value
		case "VERSION":
			version = value
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	if name == "" {
		return "", fmt.Errorf("no usable fields")
	}
	return strings.TrimSpace(name + " " + version), nil
}

func nulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
