// SPDX-License-Identifier: MIT
// Package: lattix/recipe
//
// recipe.go - recipe schema, decoding and validation.
//
// Contract:
//   • Decoding starts from DefaultRecipe; keys present in the document
//     override the defaults, unknown keys are rejected.
//   • Validation runs the struct tags first, then cross-field rules:
//     exactly one of box.rows and box.csl_multiples; csl_multiples and
//     csl_grain need a csl block; shape parameters must match shape.kind.
//   • Every failure wraps ErrInvalidRecipe.

package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lattix/cell"
	"gopkg.in/yaml.v3"
)

// Recipe is a whole simulation cell build.
type Recipe struct {
	Name             string  `yaml:"name" validate:"required"`
	Header           string  `yaml:"header"`
	Output           string  `yaml:"output"`
	Structure        string  `yaml:"structure" validate:"required,structure"`
	LatticeParameter float64 `yaml:"lattice_parameter" validate:"gt=0"`
	Precision        int     `yaml:"precision" validate:"gte=0,lte=12"`
	Wrap             bool    `yaml:"wrap"`
	Box              Box     `yaml:"box"`
	CSL              *CSL    `yaml:"csl"`
	Grains           []Grain `yaml:"grains" validate:"required,min=1,unique=Name,dive"`
}

// Box is the simulation box. Either Rows (Cartesian box rows) or
// CSLMultiples (box row i = n_i · a · CSL basis row i) must be given.
type Box struct {
	Rows         [][]float64 `yaml:"rows" validate:"omitempty,len=3,dive,len=3"`
	CSLMultiples []int       `yaml:"csl_multiples" validate:"omitempty,len=3,dive,gte=1"`
	Origin       []float64   `yaml:"origin" validate:"omitempty,len=3"`
	Boundaries   []string    `yaml:"boundaries" validate:"omitempty,len=3,dive,oneof=p f"`
}

// CSL selects a coincidence-site lattice misorientation.
type CSL struct {
	Axis  []int `yaml:"axis" validate:"len=3"`
	Sigma int   `yaml:"sigma" validate:"gt=1"`
}

// Grain is one region filled with an oriented lattice.
type Grain struct {
	Name     string    `yaml:"name" validate:"required"`
	AtomType int       `yaml:"atom_type" validate:"omitempty,gte=1"`
	Origin   []float64 `yaml:"origin" validate:"omitempty,len=3"`
	// Rotation is an extra rotation about the local z axis, in degrees.
	Rotation float64 `yaml:"rotation"`
	// CSLGrain picks lattice rotation 0 or 1 of the solved CSL.
	CSLGrain  *int   `yaml:"csl_grain" validate:"omitempty,oneof=0 1"`
	Shape     Shape  `yaml:"shape"`
	OpenFaces []int  `yaml:"open_faces" validate:"dive,gte=0"`
}

// Shape is the prism a grain is cut from; see package region.
type Shape struct {
	Kind   string    `yaml:"kind" validate:"required,oneof=box parallelogram polygon"`
	Length float64   `yaml:"length" validate:"gte=0"`
	Width  float64   `yaml:"width" validate:"gte=0"`
	Height float64   `yaml:"height" validate:"gte=0"`
	Side   float64   `yaml:"side" validate:"gte=0"`
	Sides  int       `yaml:"sides" validate:"omitempty,gte=3"`
	EdgeA  []float64 `yaml:"edge_a" validate:"omitempty,len=2"`
	EdgeB  []float64 `yaml:"edge_b" validate:"omitempty,len=2"`
	Within *Sphere   `yaml:"within"`
}

// Sphere keeps only the points within Radius of Centre.
type Sphere struct {
	Centre []float64 `yaml:"centre" validate:"len=3"`
	Radius float64   `yaml:"radius" validate:"gt=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("structure", validateStructure); err != nil {
		panic(fmt.Sprintf("recipe: register structure validation: %v", err))
	}
}

// validateStructure accepts the names known to the cell catalogue.
func validateStructure(fl validator.FieldLevel) bool {
	_, err := cell.Lookup(fl.Field().String())
	return err == nil
}

// DefaultRecipe returns the defaults every decoded recipe starts from.
func DefaultRecipe() Recipe {
	return Recipe{
		Structure:        defaultStructure,
		LatticeParameter: defaultLatticeParameter,
		Precision:        5,
		Wrap:             true,
		Box: Box{
			Boundaries: []string{BoundaryPeriodic, BoundaryPeriodic, BoundaryPeriodic},
		},
	}
}

// Parse decodes and validates a YAML recipe.
func Parse(data []byte) (Recipe, error) {
	r := DefaultRecipe()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Recipe{}, fmt.Errorf("%s: %w: %w", methodParse, ErrInvalidRecipe, err)
	}
	for i := range r.Grains {
		if r.Grains[i].AtomType == 0 {
			r.Grains[i].AtomType = defaultAtomType
		}
	}
	if err := r.Validate(); err != nil {
		return Recipe{}, fmt.Errorf("%s: %w", methodParse, err)
	}
	return r, nil
}

// Load reads and parses the recipe at path.
func Load(path string) (Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %w", methodLoad, err)
	}
	r, err := Parse(data)
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
	}
	return r, nil
}

// Validate checks struct tags and the cross-field rules.
func (r *Recipe) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, ErrInvalidRecipe, err)
	}
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w: %s", methodValidate, ErrInvalidRecipe, fmt.Sprintf(format, args...))
	}
	switch hasRows, hasMult := len(r.Box.Rows) > 0, len(r.Box.CSLMultiples) > 0; {
	case hasRows == hasMult:
		return invalid("box needs exactly one of rows and csl_multiples")
	case hasMult && r.CSL == nil:
		return invalid("box.csl_multiples without a csl block")
	}
	for _, g := range r.Grains {
		if g.CSLGrain != nil && r.CSL == nil {
			return invalid("grain %q: csl_grain without a csl block", g.Name)
		}
		if err := g.Shape.check(); err != nil {
			return invalid("grain %q: %v", g.Name, err)
		}
	}
	return nil
}

func (s Shape) check() error {
	switch s.Kind {
	case ShapeBox:
		if s.Length == 0 || s.Width == 0 {
			return errors.New("box needs length and width")
		}
	case ShapeParallelogram:
		if len(s.EdgeA) == 0 || len(s.EdgeB) == 0 {
			return errors.New("parallelogram needs edge_a and edge_b")
		}
	case ShapePolygon:
		if s.Side == 0 || s.Sides == 0 {
			return errors.New("polygon needs side and sides")
		}
	}
	return nil
}
