package repositories

import (
	"context"
	"errors"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	apperrors "print-orders/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentFields = "id, name, category, price, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, `SELECT `+equipmentFields+` FROM equipments ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := []entities.Equipment{}
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Price, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		equipments = append(equipments, e)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return r.scanOne(r.storage.QueryRow(ctx, `SELECT `+equipmentFields+` FROM equipments WHERE id = $1`, id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	query := `
		INSERT INTO equipments (name, category, price)
		VALUES ($1, $2, $3)
		RETURNING ` + equipmentFields
	return r.scanOne(r.storage.QueryRow(ctx, query, payload.Name, payload.Category, payload.Price))
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := sq.Update("equipments").PlaceholderFormat(sq.Dollar)

	changed := false
	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
		changed = true
	}
	if payload.Category != nil {
		builder = builder.Set("category", *payload.Category)
		changed = true
	}
	if payload.Price != nil {
		builder = builder.Set("price", *payload.Price)
		changed = true
	}
	if !changed {
		return r.FindEquipment(ctx, id)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanOne(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `DELETE FROM equipments WHERE id = $1 RETURNING ` + equipmentFields
	return r.scanOne(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) scanOne(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Price, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
