// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/exampartner/cli/ent/catalogsnapshot"
	"github.com/exampartner/cli/ent/schema"
	"github.com/exampartner/cli/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	catalogsnapshotFields := schema.CatalogSnapshot{}.Fields()
	_ = catalogsnapshotFields
	// catalogsnapshotDescScope is the schema descriptor for scope field.
	catalogsnapshotDescScope := catalogsnapshotFields[0].Descriptor()
	// catalogsnapshot.ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	catalogsnapshot.ScopeValidator = catalogsnapshotDescScope.Validators[0].(func(string) error)
	// catalogsnapshotDescFetchedAt is the schema descriptor for fetched_at field.
	catalogsnapshotDescFetchedAt := catalogsnapshotFields[4].Descriptor()
	// catalogsnapshot.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	catalogsnapshot.DefaultFetchedAt = catalogsnapshotDescFetchedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescName is the schema descriptor for name field.
	settingDescName := settingFields[0].Descriptor()
	// setting.NameValidator is a validator for the "name" field. It is called by the builders before save.
	setting.NameValidator = settingDescName.Validators[0].(func(string) error)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
