package prerequisites

import (
	"os/exec"
)

// PythonPackage names an importable module and its display name.
type PythonPackage struct {
	// Module is the name passed to the interpreter's import.
	Module string

	// Display is the package name shown to the operator.
	Display string
}

// DefaultPythonPackages returns the packages the notebooks import.
func DefaultPythonPackages() []PythonPackage {
	return []PythonPackage{
		{Module: "pandas", Display: "pandas"},
		{Module: "numpy", Display: "numpy"},
		{Module: "boto3", Display: "boto3"},
		{Module: "sklearn", Display: "scikit-learn"},
		{Module: "matplotlib", Display: "matplotlib"},
		{Module: "jupyter", Display: "Jupyter"},
	}
}

// PackageResult is the outcome of probing one package.
type PackageResult struct {
	Package PythonPackage
	Found   bool
}

// CheckPythonPackages probes each package by importing it in the
// given interpreter. A non-zero exit means the package is missing.
func CheckPythonPackages(interpreter string, packages []PythonPackage) []PackageResult {
	results := make([]PackageResult, 0, len(packages))
	for _, pkg := range packages {
		// #nosec G204 - module names come from the fixed default list
		cmd := exec.Command(interpreter, "-c", "import "+pkg.Module)
		err := cmd.Run()
		results = append(results, PackageResult{Package: pkg, Found: err == nil})
	}
	return results
}
