package storage

import (
	"context"
	"database/sql"
	"fmt"

	"tableside/review-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the reviews table if missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			item_id TEXT NOT NULL,
			order_id TEXT NOT NULL,
			restaurant_id INT NOT NULL,
			customer_id TEXT NOT NULL,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (item_id, order_id, restaurant_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure reviews schema: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS restaurant_reviews (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL,
			restaurant_id INT NOT NULL,
			customer_id TEXT NOT NULL,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (order_id, restaurant_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure restaurant_reviews schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetExistingReviewID(itemID, orderID string, restaurantID int) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		SELECT id FROM reviews
		WHERE item_id = $1 AND order_id = $2 AND restaurant_id = $3
	`, itemID, orderID, restaurantID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) InsertReview(review *domain.Review) error {
	return r.DB.QueryRow(`
		INSERT INTO reviews (item_id, order_id, restaurant_id, customer_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, review.ItemID, review.OrderID, review.RestaurantID, review.CustomerID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) UpdateReview(id int, review *domain.Review) error {
	_, err := r.DB.Exec(`
		UPDATE reviews
		SET rating = $1, comment = $2, created_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, review.Rating, review.Comment, id)
	return err
}

func (r *PostgresRepository) ListItemReviews(itemID string, restaurantID int) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT id, item_id, order_id, restaurant_id, customer_id, rating, comment, created_at
		FROM reviews
		WHERE item_id = $1 AND restaurant_id = $2
		ORDER BY created_at DESC
	`, itemID, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ItemID, &rev.OrderID, &rev.RestaurantID, &rev.CustomerID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func (r *PostgresRepository) InsertRestaurantReview(review *domain.RestaurantReview) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurant_reviews (order_id, restaurant_id, customer_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, restaurant_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, created_at = NOW()
		RETURNING id, created_at
	`, review.OrderID, review.RestaurantID, review.CustomerID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) ListRestaurantReviews(restaurantID int) ([]domain.RestaurantReview, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, restaurant_id, customer_id, rating, comment, created_at
		FROM restaurant_reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.RestaurantReview
	for rows.Next() {
		var rev domain.RestaurantReview
		if err := rows.Scan(&rev.ID, &rev.OrderID, &rev.RestaurantID, &rev.CustomerID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func (r *PostgresRepository) RatingDistribution(restaurantID int) (map[string]int, error) {
	rows, err := r.DB.Query(`
		SELECT rating, COUNT(*) as count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			continue
		}
		distribution[fmt.Sprintf("%d", rating)] = count
	}
	return distribution, nil
}
