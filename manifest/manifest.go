// Package manifest reads the declared version constraints of an npm project
// from its package.json.
package manifest

import (
	"fmt"
	"os"

	"github.com/safedep/dry/log"
	"github.com/tidwall/gjson"
)

const DefaultManifestFile = "package.json"

// Bucket is the package.json field a constraint was declared in
type Bucket string

const (
	BucketOverrides       Bucket = "overrides"
	BucketDependencies    Bucket = "dependencies"
	BucketDevDependencies Bucket = "devDependencies"
)

// Buckets lists the fields in the order they are audited
var Buckets = []Bucket{BucketOverrides, BucketDependencies, BucketDevDependencies}

// Constraint is a single package name to version range declaration
type Constraint struct {
	Name   string
	Range  string
	Bucket Bucket
}

type Manifest struct {
	Path string

	Overrides       []Constraint
	Dependencies    []Constraint
	DevDependencies []Constraint

	// declared tracks buckets present in the file, even when empty
	declared map[Bucket]bool
}

// Load reads and parses the manifest at path. All failures are returned as
// *ManifestReadError.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestReadError{Path: path, Err: err}
	}

	m, err := Parse(data)
	if err != nil {
		return nil, &ManifestReadError{Path: path, Err: err}
	}

	m.Path = path
	return m, nil
}

// Parse parses package.json content. Key order of every bucket is preserved.
func Parse(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	m := &Manifest{declared: map[Bucket]bool{}}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		log.Debugf("Manifest: root is not an object, nothing declared")
		return m, nil
	}

	// Walk the root instead of root.Get() so a repeated field behaves like
	// JSON.parse: the last occurrence wins
	fields := map[Bucket]gjson.Result{}
	root.ForEach(func(key, value gjson.Result) bool {
		for _, bucket := range Buckets {
			if key.String() == string(bucket) {
				fields[bucket] = value
			}
		}

		return true
	})

	for _, bucket := range Buckets {
		value, ok := fields[bucket]
		if !ok || value.Type == gjson.Null {
			continue
		}

		if !value.IsObject() {
			return nil, fmt.Errorf("%w: %s must be an object", ErrInvalidBucket, bucket)
		}

		m.declared[bucket] = true
		m.setBucket(bucket, parseBucket(bucket, value))
	}

	return m, nil
}

func parseBucket(bucket Bucket, value gjson.Result) []Constraint {
	constraints := []Constraint{}
	index := map[string]int{}

	value.ForEach(func(key, spec gjson.Result) bool {
		name := key.String()
		if spec.Type != gjson.String {
			log.Warnf("Manifest: ignoring %s in %s, version spec is not a string", name, bucket)
			return true
		}

		// Duplicate keys keep their first position and take the last value
		if i, ok := index[name]; ok {
			constraints[i].Range = spec.String()
			return true
		}

		index[name] = len(constraints)
		constraints = append(constraints, Constraint{
			Name:   name,
			Range:  spec.String(),
			Bucket: bucket,
		})

		return true
	})

	return constraints
}

func (m *Manifest) setBucket(bucket Bucket, constraints []Constraint) {
	switch bucket {
	case BucketOverrides:
		m.Overrides = constraints
	case BucketDependencies:
		m.Dependencies = constraints
	case BucketDevDependencies:
		m.DevDependencies = constraints
	}
}

// IsDeclared returns true when the bucket is present in the manifest
func (m *Manifest) IsDeclared(bucket Bucket) bool {
	return m.declared[bucket]
}

// IsEmpty returns true when none of the buckets is declared. A declared but
// empty bucket still counts as something to check.
func (m *Manifest) IsEmpty() bool {
	for _, bucket := range Buckets {
		if m.IsDeclared(bucket) {
			return false
		}
	}

	return true
}

// Constraints returns overrides, dependencies and devDependencies concatenated
// in that order. Names repeated across buckets are not merged.
func (m *Manifest) Constraints() []Constraint {
	constraints := make([]Constraint, 0,
		len(m.Overrides)+len(m.Dependencies)+len(m.DevDependencies))

	constraints = append(constraints, m.Overrides...)
	constraints = append(constraints, m.Dependencies...)
	constraints = append(constraints, m.DevDependencies...)

	return constraints
}
