// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogSnapshotsColumns holds the columns for the "catalog_snapshots" table.
	CatalogSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope", Type: field.TypeString, Unique: true},
		{Name: "exams", Type: field.TypeJSON},
		{Name: "years", Type: field.TypeJSON},
		{Name: "subjects", Type: field.TypeJSON},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// CatalogSnapshotsTable holds the schema information for the "catalog_snapshots" table.
	CatalogSnapshotsTable = &schema.Table{
		Name:       "catalog_snapshots",
		Columns:    CatalogSnapshotsColumns,
		PrimaryKey: []*schema.Column{CatalogSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "catalogsnapshot_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{CatalogSnapshotsColumns[5]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogSnapshotsTable,
		SettingsTable,
	}
)

func init() {
}
