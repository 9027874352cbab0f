package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/admissions/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed departments.yaml
var defaultDepartmentsYAML []byte

type departmentFile struct {
	Departments []domain.Department `yaml:"departments"`
}

// DefaultDepartments returns the built-in four-department table.
func DefaultDepartments() []domain.Department {
	depts, err := ParseDepartments(bytes.NewReader(defaultDepartmentsYAML))
	if err != nil {
		panic(fmt.Sprintf("config: embedded department table: %v", err))
	}
	return depts
}

// ParseDepartments decodes and validates a YAML department table.
func ParseDepartments(r io.Reader) ([]domain.Department, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f departmentFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty department file", domain.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: parsing departments: %v", domain.ErrInvalidConfig, err)
	}
	if err := domain.ValidateDepartments(f.Departments); err != nil {
		return nil, err
	}
	return f.Departments, nil
}

// LoadDepartments reads the table at path, or the built-in table when
// path is empty.
func LoadDepartments(path string) ([]domain.Department, error) {
	if path == "" {
		return DefaultDepartments(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening department file: %w", err)
	}
	defer f.Close()

	depts, err := ParseDepartments(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return depts, nil
}
