package molfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/molviz/molviz/pkg/mol"
)

// Marshal converts a molecule to indented JSON bytes.
func Marshal(m *mol.Molecule) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a molecule as JSON to an io.Writer.
func Write(m *mol.Molecule, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromMolecule(m)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a molecule to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(m *mol.Molecule, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(m, f)
}

// Read decodes a JSON molecule from an io.Reader.
// Returns validation errors for documents whose bonds reference
// missing atoms.
func Read(r io.Reader) (*mol.Molecule, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToMolecule(doc)
}

// ReadFile reads a JSON file and returns the decoded molecule.
func ReadFile(path string) (*mol.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
