package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "shopbackend/internal/config"
	"shopbackend/internal/domain"
	"shopbackend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type ProductTypeRepository struct {
	DB *sql.DB
}

func (r ProductTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ProductTypeRepository) Create(name string) (models.ProductType, error) {
	now := time.Now()
	res, err := r.db().Exec(`INSERT INTO product_types (name, created_at, updated_at) VALUES (?, ?, ?)`, name, now, now)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.ProductType{}, domain.ConflictError{Resource: "product type", Msg: "category name already exists", Err: err}
		}
		return models.ProductType{}, err
	}
	id, _ := res.LastInsertId()
	return models.ProductType{ID: id, Name: name}, nil
}

func (r ProductTypeRepository) List() ([]models.ProductType, error) {
	rows, err := r.db().Query(`SELECT id, name FROM product_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.ProductType{}
	for rows.Next() {
		var t models.ProductType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
