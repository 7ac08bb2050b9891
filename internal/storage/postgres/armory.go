package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironvale/forge/internal/game/rarity"
	"github.com/ironvale/forge/internal/game/stats"
	"github.com/ironvale/forge/internal/game/weapon"
)

// ErrWeaponNotFound is returned when a weapon lookup yields no results.
var ErrWeaponNotFound = errors.New("weapon not found")

// ArmoryRepository persists forged weapons and their modifier rolls.
// Weapons live in the weapons table; each modifier is a child row in
// weapon_modifiers keyed by (weapon_id, position) so insertion order
// survives a round trip.
type ArmoryRepository struct {
	db *pgxpool.Pool
}

// NewArmoryRepository creates an ArmoryRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewArmoryRepository(db *pgxpool.Pool) *ArmoryRepository {
	return &ArmoryRepository{db: db}
}

const weaponColumns = `id, base_name, name, weapon_type, rarity, element,
	damage, critical_chance, critical_damage, attack_speed, reach, weight,
	level, growth_rate`

// Save upserts the weapon under the given owner and replaces its modifier
// rows, all in one transaction. Re-saving after level-ups, enchants, or
// renames is therefore always safe.
//
// Precondition: owner must be non-empty; w must be non-nil.
// Postcondition: Get(ctx, w.ID()) returns an equivalent weapon.
func (r *ArmoryRepository) Save(ctx context.Context, owner string, w *weapon.Weapon) error {
	s := w.Snapshot()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning weapon save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO weapons
			(id, owner, base_name, name, weapon_type, rarity, element,
			 damage, critical_chance, critical_damage, attack_speed, reach, weight,
			 level, growth_rate)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			name = EXCLUDED.name,
			level = EXCLUDED.level,
			updated_at = NOW()`,
		s.ID, owner, s.BaseName, s.Name,
		s.Type.String(), s.Tier.String(), s.Element.String(),
		s.Attributes.Damage, s.Attributes.CriticalChance, s.Attributes.CriticalDamage,
		s.Attributes.AttackSpeed, s.Attributes.Reach, s.Attributes.Weight,
		s.Level, s.GrowthRate,
	)
	if err != nil {
		return fmt.Errorf("upserting weapon: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM weapon_modifiers WHERE weapon_id = $1`, s.ID); err != nil {
		return fmt.Errorf("clearing weapon modifiers: %w", err)
	}
	for i, m := range s.Modifiers {
		_, err := tx.Exec(ctx, `
			INSERT INTO weapon_modifiers (weapon_id, position, stat, kind, value)
			VALUES ($1, $2, $3, $4, $5)`,
			s.ID, i, m.Stat().String(), m.Kind().String(), m.Value(),
		)
		if err != nil {
			return fmt.Errorf("inserting weapon modifier %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing weapon save: %w", err)
	}
	return nil
}

// Get retrieves a weapon by ID with its modifiers in saved order.
//
// Precondition: id must be non-empty.
// Postcondition: Returns the weapon or ErrWeaponNotFound.
func (r *ArmoryRepository) Get(ctx context.Context, id string) (*weapon.Weapon, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+weaponColumns+` FROM weapons WHERE id = $1`, id)

	s, err := scanWeaponSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeaponNotFound
		}
		return nil, fmt.Errorf("querying weapon: %w", err)
	}

	modsByWeapon, err := r.loadModifiers(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	s.Modifiers = modsByWeapon[id]

	return weapon.FromSnapshot(s)
}

// ListByOwner returns all weapons held by the given owner, oldest first.
//
// Precondition: owner must be non-empty.
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *ArmoryRepository) ListByOwner(ctx context.Context, owner string) ([]*weapon.Weapon, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+weaponColumns+` FROM weapons WHERE owner = $1 ORDER BY created_at ASC`, owner)
	if err != nil {
		return nil, fmt.Errorf("listing weapons: %w", err)
	}
	defer rows.Close()

	snapshots := make([]weapon.Snapshot, 0)
	ids := make([]string, 0)
	for rows.Next() {
		s, err := scanWeaponSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning weapon row: %w", err)
		}
		snapshots = append(snapshots, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	modsByWeapon, err := r.loadModifiers(ctx, ids)
	if err != nil {
		return nil, err
	}

	weapons := make([]*weapon.Weapon, 0, len(snapshots))
	for _, s := range snapshots {
		s.Modifiers = modsByWeapon[s.ID]
		w, err := weapon.FromSnapshot(s)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, w)
	}
	return weapons, nil
}

// Delete removes a weapon; its modifier rows cascade.
//
// Precondition: id must be non-empty.
// Postcondition: Returns nil on success, ErrWeaponNotFound if no row matched.
func (r *ArmoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM weapons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting weapon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWeaponNotFound
	}
	return nil
}

// loadModifiers fetches modifier rows for the given weapon IDs, grouped by
// weapon and ordered by saved position.
func (r *ArmoryRepository) loadModifiers(ctx context.Context, ids []string) (map[string][]*stats.Modifier, error) {
	out := make(map[string][]*stats.Modifier, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT weapon_id, stat, kind, value
		FROM weapon_modifiers
		WHERE weapon_id = ANY($1)
		ORDER BY weapon_id, position ASC`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("listing weapon modifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var weaponID, statName, kindName string
		var value float64
		if err := rows.Scan(&weaponID, &statName, &kindName, &value); err != nil {
			return nil, fmt.Errorf("scanning modifier row: %w", err)
		}
		m, err := restoreModifier(statName, kindName, value)
		if err != nil {
			return nil, fmt.Errorf("restoring modifier for weapon %s: %w", weaponID, err)
		}
		out[weaponID] = append(out[weaponID], m)
	}
	return out, rows.Err()
}

// scanTarget abstracts pgx.Row and pgx.Rows for shared scanning.
type scanTarget interface {
	Scan(dest ...any) error
}

func scanWeaponSnapshot(row scanTarget) (weapon.Snapshot, error) {
	var s weapon.Snapshot
	var typeName, rarityName, elementName string
	err := row.Scan(
		&s.ID, &s.BaseName, &s.Name, &typeName, &rarityName, &elementName,
		&s.Attributes.Damage, &s.Attributes.CriticalChance, &s.Attributes.CriticalDamage,
		&s.Attributes.AttackSpeed, &s.Attributes.Reach, &s.Attributes.Weight,
		&s.Level, &s.GrowthRate,
	)
	if err != nil {
		return weapon.Snapshot{}, err
	}

	if s.Type, err = weapon.ParseType(typeName); err != nil {
		return weapon.Snapshot{}, fmt.Errorf("weapon %s: %w", s.ID, err)
	}
	if s.Tier, err = rarity.Parse(rarityName); err != nil {
		return weapon.Snapshot{}, fmt.Errorf("weapon %s: %w", s.ID, err)
	}
	if s.Element, err = weapon.ParseElement(elementName); err != nil {
		return weapon.Snapshot{}, fmt.Errorf("weapon %s: %w", s.ID, err)
	}
	return s, nil
}

func restoreModifier(statName, kindName string, value float64) (*stats.Modifier, error) {
	statKind, err := stats.ParseStatKind(statName)
	if err != nil {
		return nil, err
	}
	kind, err := stats.ParseModifierKind(kindName)
	if err != nil {
		return nil, err
	}
	return stats.RestoreModifier(statKind, kind, value)
}
