// Package seed installs starter categories and subscriptions for new users.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/beheryahmed1991/subscription-tracker/internal/category"
	"github.com/beheryahmed1991/subscription-tracker/internal/subscription"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Fixture is the starter data set.
type Fixture struct {
	Categories []CategorySeed `yaml:"categories"`
}

type CategorySeed struct {
	Name          string             `yaml:"name"`
	Color         string             `yaml:"color"`
	Subscriptions []SubscriptionSeed `yaml:"subscriptions"`
}

type SubscriptionSeed struct {
	Name      string  `yaml:"name"`
	Icon      string  `yaml:"icon"`
	Price     float64 `yaml:"price"`
	Frequency int     `yaml:"frequency"`
	Cycle     string  `yaml:"cycle"`
}

// Defaults parses the embedded fixture.
func Defaults() (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(defaultsYAML, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse seed fixture: %w", err)
	}
	return f, nil
}

// CategoryStore is the category persistence needed for seeding.
type CategoryStore interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, userID uuid.UUID, name, color string) (category.Category, error)
}

// SubscriptionCreator creates one subscription through the normal write path.
type SubscriptionCreator interface {
	Create(ctx context.Context, owner user.User, in subscription.Input) (subscription.Subscription, error)
}

// Stores are the writers seeding needs, all bound to one transaction.
type Stores struct {
	Categories    CategoryStore
	Subscriptions SubscriptionCreator
}

// Transactor runs fn with Stores bound to a single transaction owned by
// owner. Nothing fn wrote is kept unless it returns nil.
type Transactor interface {
	InTx(ctx context.Context, owner user.User, fn func(Stores) error) error
}

type Seeder struct {
	fixture Fixture
	tx      Transactor
}

func NewSeeder(fixture Fixture, tx Transactor) *Seeder {
	return &Seeder{fixture: fixture, tx: tx}
}

// Seed installs the fixture for owner unless they already have categories.
// It reports whether anything was written. A failure part way leaves the
// user untouched so a later call can retry.
func (s *Seeder) Seed(ctx context.Context, owner user.User) (bool, error) {
	seeded := false
	err := s.tx.InTx(ctx, owner, func(st Stores) error {
		n, err := st.Categories.Count(ctx, owner.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, cs := range s.fixture.Categories {
			cat, err := st.Categories.Create(ctx, owner.ID, cs.Name, cs.Color)
			if err != nil {
				return err
			}
			for _, ss := range cs.Subscriptions {
				if _, err := st.Subscriptions.Create(ctx, owner, input(ss, cat)); err != nil {
					return fmt.Errorf("seed %q: %w", ss.Name, err)
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

// input builds a create request. Currency is left empty so the owner's
// default applies and the subscription takes the category color.
func input(ss SubscriptionSeed, cat category.Category) subscription.Input {
	name, icon, cycle := ss.Name, ss.Icon, ss.Cycle
	price, frequency := ss.Price, ss.Frequency
	categoryID, color := cat.ID, cat.Color
	return subscription.Input{
		Name:       &name,
		Icon:       &icon,
		Color:      &color,
		CategoryID: &categoryID,
		Price:      &price,
		Frequency:  &frequency,
		Cycle:      &cycle,
	}
}
