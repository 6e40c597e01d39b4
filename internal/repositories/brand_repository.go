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

type BrandRepository struct {
	DB *sql.DB
}

func (r BrandRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BrandRepository) Create(name string) (models.Brand, error) {
	now := time.Now()
	res, err := r.db().Exec(`INSERT INTO brands (name, created_at, updated_at) VALUES (?, ?, ?)`, name, now, now)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.Brand{}, domain.ConflictError{Resource: "brand", Msg: "brand name already exists", Err: err}
		}
		return models.Brand{}, err
	}
	id, _ := res.LastInsertId()
	return models.Brand{ID: id, Name: name}, nil
}

func (r BrandRepository) List() ([]models.Brand, error) {
	rows, err := r.db().Query(`SELECT id, name FROM brands ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
