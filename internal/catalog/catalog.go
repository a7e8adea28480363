// Package catalog serves the fixed list of bootcamps. The data is read once
// at startup and never mutated afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed bootcamps.yaml
var defaultCatalog []byte

type Catalog struct {
	ordered []*domain.Bootcamp
	byID    map[int]*domain.Bootcamp
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var bootcamps []domain.Bootcamp
	if err := yaml.Unmarshal(data, &bootcamps); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return New(bootcamps)
}

// New validates the bootcamps and indexes them by id.
func New(bootcamps []domain.Bootcamp) (*Catalog, error) {
	if len(bootcamps) == 0 {
		return nil, errors.New("catalog is empty")
	}

	validate := validator.New()
	c := &Catalog{
		ordered: make([]*domain.Bootcamp, 0, len(bootcamps)),
		byID:    make(map[int]*domain.Bootcamp, len(bootcamps)),
	}

	for i := range bootcamps {
		b := bootcamps[i]
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("bootcamp %d (%s): %w", b.ID, b.Name, formatValidationError(err))
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("bootcamp %d: duplicate id", b.ID)
		}
		if err := checkPlans(&b); err != nil {
			return nil, fmt.Errorf("bootcamp %d (%s): %w", b.ID, b.Name, err)
		}

		c.byID[b.ID] = &b
		c.ordered = append(c.ordered, &b)
	}

	sort.SliceStable(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })

	return c, nil
}

func (c *Catalog) List() []*domain.Bootcamp {
	res := make([]*domain.Bootcamp, len(c.ordered))
	copy(res, c.ordered)
	return res
}

func (c *Catalog) Get(id int) (*domain.Bootcamp, error) {
	b, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrBootcampNotFound
	}
	return b, nil
}

// checkPlans rejects two plans with the same type: the type is what a
// registration stores.
func checkPlans(b *domain.Bootcamp) error {
	seen := make(map[string]struct{}, len(b.PaymentPlans))
	for _, p := range b.PaymentPlans {
		if _, ok := seen[p.Type]; ok {
			return fmt.Errorf("duplicate payment plan %q", p.Type)
		}
		seen[p.Type] = struct{}{}
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, ve := range validationErrs {
			msgs = append(msgs, fmt.Sprintf("%s (%s)", ve.Namespace(), ve.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}
