package data

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	linksTable = "links"

	columnID          = "id"
	columnShortCode   = "short_code"
	columnOriginalURL = "original_url"
	columnClicks      = "clicks"
	columnCreatedAt   = "created_at"
	columnExpiresAt   = "expires_at"
)

// linkColumns is the select list, in scan order.
var linkColumns = []string{
	columnID,
	columnShortCode,
	columnOriginalURL,
	columnClicks,
	columnCreatedAt,
	columnExpiresAt,
}

var (
	// LinksColumns holds the columns for the "links" table.
	LinksColumns = []*schema.Column{
		{Name: columnID, Type: field.TypeString, Size: 36},
		{Name: columnShortCode, Type: field.TypeString, Unique: true, Size: 32},
		{Name: columnOriginalURL, Type: field.TypeString, Size: 2048},
		{Name: columnClicks, Type: field.TypeInt64, Default: 0},
		{Name: columnCreatedAt, Type: field.TypeTime},
		{Name: columnExpiresAt, Type: field.TypeTime},
	}
	// LinksTable holds the schema information for the "links" table.
	LinksTable = &schema.Table{
		Name:       linksTable,
		Columns:    LinksColumns,
		PrimaryKey: []*schema.Column{LinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "link_expires_at",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[5]},
			},
			{
				Name:    "link_created_at",
				Unique:  false,
				Columns: []*schema.Column{LinksColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LinksTable,
	}
)

// Migrate creates or upgrades the link schema.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}
