package db

import "context"

// InstanceSetting holds instance-wide toggles. There is at most one row.
type InstanceSetting struct {
	RegistrationEnabled bool
}

// GetInstanceSettings fetches the singleton settings row.
func (q *Queries) GetInstanceSettings(ctx context.Context) (*InstanceSetting, error) {
	var s InstanceSetting
	err := q.db.QueryRow(ctx,
		`SELECT registration_enabled FROM instance_settings LIMIT 1`).Scan(&s.RegistrationEnabled)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertRegistrationEnabled flips the registration toggle.
func (q *Queries) UpsertRegistrationEnabled(ctx context.Context, enabled bool) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO instance_settings (singleton, registration_enabled)
		VALUES (TRUE, $1)
		ON CONFLICT (singleton) DO UPDATE SET registration_enabled = EXCLUDED.registration_enabled`,
		enabled)
	return err
}
