package handlers

import (
	"os"
	"path/filepath"
	"runtime"
)

// venvDir is the virtual environment created next to the notebooks.
const venvDir = "venv"

// venvBin returns the scripts directory inside the virtual environment.
func venvBin() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts")
	}
	return filepath.Join(venvDir, "bin")
}

// venvPip returns the pip executable inside the virtual environment.
func venvPip() string {
	return filepath.Join(venvBin(), "pip")
}

// venvActivate returns the activation script the operator sources.
func venvActivate() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvBin(), "activate")
	}
	return "source " + filepath.Join(venvBin(), "activate")
}

// pythonInterpreter prefers the virtual environment's interpreter when
// one exists so package checks see the packages setup installed.
func pythonInterpreter() string {
	venvPython := filepath.Join(venvBin(), "python")
	if _, err := os.Stat(venvPython); err == nil {
		return venvPython
	}
	return "python3"
}
