// Package seed loads the initial organisational data (units, positions,
// back-office users and institutional pages) from a YAML file.
package seed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"institute-portal-backend/internal/database/models"
)

// UnitData is a unit of the org chart. Parent refers to another unit's code.
type UnitData struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Acronym string `yaml:"acronym"`
	Parent  string `yaml:"parent,omitempty"`
}

type PositionData struct {
	Code  string `yaml:"code"`
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
	Level string `yaml:"level,omitempty"`
}

// UserData is a back-office account. Password may be empty for accounts
// that only sign in through gov.br.
type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password,omitempty"`
}

type PageData struct {
	Slug      string `yaml:"slug"`
	Title     string `yaml:"title"`
	Body      string `yaml:"body"`
	Published bool   `yaml:"published"`
	MenuOrder int    `yaml:"menu_order"`
}

// Data is the layout of a seed file
type Data struct {
	Units     []UnitData     `yaml:"units"`
	Positions []PositionData `yaml:"positions"`
	Users     []UserData     `yaml:"users"`
	Pages     []PageData     `yaml:"pages"`
}

// Counts reports how many records of each kind were created. Existing
// records are left untouched.
type Counts struct {
	Units     int
	Positions int
	Users     int
	Pages     int
}

// Parse decodes and checks a seed file. Unknown keys are rejected so typos
// do not silently drop data.
func Parse(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err := data.check(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) check() error {
	codes := make(map[string]bool, len(d.Units))
	for i, u := range d.Units {
		if u.Code == "" || u.Name == "" {
			return fmt.Errorf("units[%d]: code and name are required", i)
		}
		if codes[u.Code] {
			return fmt.Errorf("units[%d]: duplicate code %s", i, u.Code)
		}
		codes[u.Code] = true
	}
	for i, u := range d.Units {
		if u.Parent != "" && !codes[u.Parent] {
			return fmt.Errorf("units[%d]: unknown parent %s", i, u.Parent)
		}
	}
	for i, p := range d.Positions {
		if p.Code == "" || p.Title == "" {
			return fmt.Errorf("positions[%d]: code and title are required", i)
		}
		if p.Kind != "" && !models.PositionKind(p.Kind).IsValid() {
			return fmt.Errorf("positions[%d]: invalid kind %s", i, p.Kind)
		}
	}
	for i, u := range d.Users {
		if u.Email == "" || u.FullName == "" {
			return fmt.Errorf("users[%d]: email and full_name are required", i)
		}
		if !models.Role(u.Role).IsValid() {
			return fmt.Errorf("users[%d]: invalid role %q", i, u.Role)
		}
	}
	for i, p := range d.Pages {
		if p.Slug == "" || p.Title == "" {
			return fmt.Errorf("pages[%d]: slug and title are required", i)
		}
	}
	return nil
}

// Apply creates the records of data that do not exist yet, in one
// transaction. Units are created parents first, whatever their order in
// the file.
func Apply(db *gorm.DB, data *Data, hash func(string) (string, error)) (*Counts, error) {
	counts := &Counts{}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := applyUnits(tx, data.Units, counts); err != nil {
			return err
		}
		for _, p := range data.Positions {
			created, err := firstOrCreate(tx, &models.Position{}, "code = ?", p.Code, &models.Position{
				Code:  p.Code,
				Title: p.Title,
				Kind:  positionKind(p.Kind),
				Level: p.Level,
			})
			if err != nil {
				return fmt.Errorf("position %s: %w", p.Code, err)
			}
			if created {
				counts.Positions++
			}
		}
		for _, u := range data.Users {
			email := strings.ToLower(strings.TrimSpace(u.Email))
			user := &models.User{Email: email, FullName: u.FullName, Role: models.Role(u.Role), IsActive: true}
			if u.Password != "" {
				h, err := hash(u.Password)
				if err != nil {
					return fmt.Errorf("user %s: %w", email, err)
				}
				user.PasswordHash = h
			}
			user.CreatedBy = "seed"
			created, err := firstOrCreate(tx, &models.User{}, "email = ?", email, user)
			if err != nil {
				return fmt.Errorf("user %s: %w", email, err)
			}
			if created {
				counts.Users++
			}
		}
		for _, p := range data.Pages {
			created, err := firstOrCreate(tx, &models.Page{}, "slug = ?", p.Slug, &models.Page{
				Slug:      p.Slug,
				Title:     p.Title,
				Body:      p.Body,
				Published: p.Published,
				MenuOrder: p.MenuOrder,
			})
			if err != nil {
				return fmt.Errorf("page %s: %w", p.Slug, err)
			}
			if created {
				counts.Pages++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func applyUnits(tx *gorm.DB, units []UnitData, counts *Counts) error {
	byCode := make(map[string]*models.Unit, len(units))
	pending := units
	for len(pending) > 0 {
		var next []UnitData
		for _, u := range pending {
			var parent *models.Unit
			if u.Parent != "" {
				parent = byCode[u.Parent]
				if parent == nil {
					next = append(next, u)
					continue
				}
			}
			unit := &models.Unit{Code: u.Code, Name: u.Name, Acronym: u.Acronym, IsActive: true}
			if parent != nil {
				unit.ParentID = &parent.ID
			}
			var existing models.Unit
			created, err := firstOrCreate(tx, &existing, "code = ?", u.Code, unit)
			if err != nil {
				return fmt.Errorf("unit %s: %w", u.Code, err)
			}
			if created {
				counts.Units++
				byCode[u.Code] = unit
			} else {
				byCode[u.Code] = &existing
			}
		}
		if len(next) == len(pending) {
			return fmt.Errorf("units: parent cycle involving %s", next[0].Code)
		}
		pending = next
	}
	return nil
}

// firstOrCreate loads the record matching cond into existing, or creates
// record when there is none.
func firstOrCreate(tx *gorm.DB, existing interface{}, cond string, arg interface{}, record interface{}) (bool, error) {
	err := tx.Where(cond, arg).First(existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(record).Error; err != nil {
		return false, err
	}
	return true, nil
}

func positionKind(kind string) models.PositionKind {
	if kind == "" {
		return models.PositionKindEffective
	}
	return models.PositionKind(kind)
}
