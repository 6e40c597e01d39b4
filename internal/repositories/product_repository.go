package repositories

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	intconfig "shopbackend/internal/config"
	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"
)

// ProductRepository executes product listing specs against MySQL, joining
// the referenced brand (and product type on the full-listing path) into
// each row.
type ProductRepository struct {
	DB *sql.DB
}

func (r ProductRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const productBrandSelect = `
	SELECT
		p.id,
		p.name,
		COALESCE(p.description,''),
		p.price,
		p.brand_id,
		p.product_type_id,
		p.shipping,
		p.available,
		COALESCE(p.sold,0),
		p.publish,
		COALESCE(p.images,'[]'),
		p.created_at,
		p.updated_at,
		b.name
	FROM products p
	JOIN brands b ON b.id = p.brand_id
`

const productFullSelect = `
	SELECT
		p.id,
		p.name,
		COALESCE(p.description,''),
		p.price,
		p.brand_id,
		p.product_type_id,
		p.shipping,
		p.available,
		COALESCE(p.sold,0),
		p.publish,
		COALESCE(p.images,'[]'),
		p.created_at,
		p.updated_at,
		b.name,
		t.name
	FROM products p
	JOIN brands b ON b.id = p.brand_id
	JOIN product_types t ON t.id = p.product_type_id
`

func scanProducts(rows *sql.Rows, withType bool) ([]models.Product, error) {
	defer rows.Close()

	list := []models.Product{}
	for rows.Next() {
		var p models.Product
		var images []byte
		var brandName string
		var typeName string

		dest := []any{
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.BrandID,
			&p.ProductTypeID,
			&p.Shipping,
			&p.Available,
			&p.Sold,
			&p.Publish,
			&images,
			&p.CreatedAt,
			&p.UpdatedAt,
			&brandName,
		}
		if withType {
			dest = append(dest, &typeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(images, &p.Images); err != nil || p.Images == nil {
			p.Images = []string{}
		}
		p.Brand = &models.Brand{ID: p.BrandID, Name: brandName}
		if withType {
			p.ProductType = &models.ProductType{ID: p.ProductTypeID, Name: typeName}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Filter runs a full spec: predicate, brand join, sort, skip, limit, in
// that order. An invalid skip is executed as offset zero.
func (r ProductRepository) Filter(spec domain.FilterSpec) ([]models.Product, error) {
	where, args := renderPredicate(spec.Predicate)

	query := productBrandSelect
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY p.`" + columnFor(spec.SortField) + "` " + orderKeyword(spec.SortOrder)
	query += " LIMIT ? OFFSET ?"

	var offset int64
	if spec.Skip.Valid {
		offset = spec.Skip.Int64
	}
	args = append(args, spec.Limit, offset)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows, false)
}

// ListSorted is the sort/order/limit variant of the GET listing: top-limit
// after sort, skip deliberately not applied on this branch.
func (r ProductRepository) ListSorted(spec domain.FilterSpec) ([]models.Product, error) {
	query := productBrandSelect +
		" ORDER BY p.`" + columnFor(spec.SortField) + "` " + orderKeyword(spec.SortOrder) +
		" LIMIT ?"

	rows, err := r.db().Query(query, spec.Limit)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows, false)
}

// ListByPublish filters on the publish flag only; sort, limit and skip are
// ignored on this branch.
func (r ProductRepository) ListByPublish(publish bool) ([]models.Product, error) {
	rows, err := r.db().Query(productBrandSelect+" WHERE p.publish = ?", publish)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows, false)
}

// ListAll fetches the whole collection with brand and product type joined
// and no pagination.
func (r ProductRepository) ListAll() ([]models.Product, error) {
	rows, err := r.db().Query(productFullSelect)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows, true)
}

// GetFromFullListing loads the entire joined collection and picks the
// requested id out of the fetched set in memory. The id lookup therefore
// bypasses any pagination; known limitation kept for compatibility with
// the legacy listing route. A miss is a nil product, not an error.
func (r ProductRepository) GetFromFullListing(productID string) (*models.Product, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strconv.FormatInt(all[i].ID, 10) == productID {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Create inserts a catalog record. Uniqueness and reference errors come
// back raw from the store; the handler shapes them for the client.
func (r ProductRepository) Create(p models.Product) (models.Product, error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return models.Product{}, err
	}

	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO products (name, description, price, brand_id, product_type_id, shipping, available, sold, publish, images, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Description, p.Price, p.BrandID, p.ProductTypeID, p.Shipping, p.Available, p.Sold, p.Publish, imagesJSON, now, now)
	if err != nil {
		return models.Product{}, err
	}

	p.ID, _ = res.LastInsertId()
	p.Images = images
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}
