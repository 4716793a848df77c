package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type orderRepository struct {
	db  *DB
	log zerolog.Logger
	now func() time.Time
}

var _ ports.OrderRepository = (*orderRepository)(nil)

// NewOrderRepository creates a repository for orders.
func NewOrderRepository(db *DB, baseLogger *zerolog.Logger) ports.OrderRepository {
	return &orderRepository{
		db:  db,
		log: baseLogger.With().Str("component", "order_repo").Logger(),
		now: time.Now,
	}
}

const orderCols = `
	id, user_id, subtotal, discount, total, status, address, payment_method,
	latitude, longitude, promo_code, points_earned, created_at, updated_at
`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Subtotal, &o.Discount, &o.Total, &o.Status, &o.Address, &o.PaymentMethod,
		&o.Latitude, &o.Longitude, &o.PromoCode, &o.PointsEarned, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// lockedLine is a cart line with its product row locked for update.
type lockedLine struct {
	item    domain.CartItem
	product domain.Product
}

// CreateFromCart turns the cart into an order in a single transaction.
func (r *orderRepository) CreateFromCart(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error) {
	log := r.log.With().Str("user_id", req.UserID.String()).Logger()
	var order *domain.Order

	err := r.db.withTx(ctx, func(tx pgx.Tx) error {
		// 1. Lock the cart and its products
		lines, err := r.lockCart(ctx, tx, req.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrCartEmpty
		}

		var subtotal domain.Money
		for _, l := range lines {
			if !l.product.Available(l.item.Quantity) {
				log.Warn().Int64("product_id", l.product.ID).Int("qty", l.item.Quantity).Msg("Product unavailable at checkout")
				return domain.ErrProductUnavailable
			}
			subtotal += l.item.LineTotal()
		}

		// 2. Apply the promo if it is still valid
		discount, promoCode, err := r.applyPromo(ctx, tx, req.PromoCode, subtotal)
		if err != nil {
			return err
		}
		total := subtotal - discount
		points := domain.PointsFor(total)

		// 3. Insert the order and its snapshot lines
		order, err = scanOrder(tx.QueryRow(ctx, `
			INSERT INTO orders (user_id, subtotal, discount, total, status, address, payment_method,
			                    latitude, longitude, promo_code, points_earned)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING `+orderCols,
			req.UserID, subtotal, discount, total, domain.OrderPending, req.Address, req.PaymentMethod,
			req.Latitude, req.Longitude, promoCode, points,
		))
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for _, l := range lines {
			batch.Queue(`
				INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
				VALUES ($1, $2, $3, $4, $5)`,
				order.ID, l.product.ID, l.item.ProductName, l.item.UnitPrice, l.item.Quantity)
			batch.Queue(`
				UPDATE products
				SET stock = CASE WHEN stock IS NULL THEN NULL ELSE stock - $2 END, sales = sales + $2
				WHERE id = $1`,
				l.product.ID, l.item.Quantity)
			order.Items = append(order.Items, domain.OrderItem{
				OrderID:     order.ID,
				ProductID:   l.product.ID,
				ProductName: l.item.ProductName,
				UnitPrice:   l.item.UnitPrice,
				Quantity:    l.item.Quantity,
			})
		}
		// 4. Clear the cart and credit loyalty points
		batch.Queue(`DELETE FROM cart_items WHERE user_id = $1`, req.UserID)
		batch.Queue(`
			INSERT INTO loyalty_accounts (user_id, points, lifetime_points)
			VALUES ($1, $2, $2)
			ON CONFLICT (user_id) DO UPDATE
			SET points = loyalty_accounts.points + EXCLUDED.points,
			    lifetime_points = loyalty_accounts.lifetime_points + EXCLUDED.lifetime_points,
			    updated_at = NOW()`,
			req.UserID, points)
		if promoCode != nil {
			batch.Queue(`UPDATE promo_codes SET used_count = used_count + 1 WHERE code = $1`, *promoCode)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("write order lines: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrCartEmpty) && !errors.Is(err, domain.ErrProductUnavailable) {
			log.Error().Err(err).Msg("Checkout transaction failed")
		}
		return nil, err
	}

	log.Info().Int64("order_id", order.ID).Str("total", order.Total.String()).Msg("Order created")
	return order, nil
}

func (r *orderRepository) lockCart(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]lockedLine, error) {
	rows, err := tx.Query(ctx, `
		SELECT c.id, c.product_id, p.name, p.price, c.quantity, p.is_active, p.stock
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.product_id
		FOR UPDATE OF c, p`, userID)
	if err != nil {
		return nil, fmt.Errorf("lock cart: %w", err)
	}
	defer rows.Close()

	var lines []lockedLine
	for rows.Next() {
		var l lockedLine
		if err := rows.Scan(&l.item.ID, &l.item.ProductID, &l.item.ProductName, &l.item.UnitPrice,
			&l.item.Quantity, &l.product.IsActive, &l.product.Stock); err != nil {
			return nil, err
		}
		l.item.UserID = userID
		l.product.ID = l.item.ProductID
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// applyPromo returns the discount and the code to store. An invalid code is dropped silently.
func (r *orderRepository) applyPromo(ctx context.Context, tx pgx.Tx, code string, subtotal domain.Money) (domain.Money, *string, error) {
	code = domain.NormalizePromoCode(code)
	if code == "" {
		return 0, nil, nil
	}
	promo, err := oneOrNil(scanPromo(tx.QueryRow(ctx, `SELECT `+promoCols+` FROM promo_codes WHERE code = $1 FOR UPDATE`, code)))
	if err != nil {
		return 0, nil, fmt.Errorf("lock promo %q: %w", code, err)
	}
	discount, err := promo.Discount(subtotal, r.now())
	if err != nil {
		r.log.Info().Err(err).Str("code", code).Msg("Promo no longer valid at checkout")
		return 0, nil, nil
	}
	return discount, &code, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, order_id, product_id, product_name, unit_price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY id`, order.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.UnitPrice, &it.Quantity); err != nil {
			return err
		}
		order.Items = append(order.Items, it)
	}
	return rows.Err()
}

func (r *orderRepository) getWithItems(ctx context.Context, row pgx.Row) (*domain.Order, error) {
	order, err := oneOrNil(scanOrder(row))
	if err != nil || order == nil {
		return order, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetForUser(ctx context.Context, orderID int64, userID uuid.UUID) (*domain.Order, error) {
	return r.getWithItems(ctx, r.db.pool.QueryRow(ctx,
		`SELECT `+orderCols+` FROM orders WHERE id = $1 AND user_id = $2`, orderID, userID))
}

func (r *orderRepository) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	return r.getWithItems(ctx, r.db.pool.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, orderID))
}

func (r *orderRepository) collect(rows pgx.Rows) ([]*domain.Order, error) {
	defer rows.Close()
	var out []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Order, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT `+orderCols+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return r.collect(rows)
}

// List filters by status and by order id or customer name.
func (r *orderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*domain.Order, int, error) {
	search := likePattern(filter.Search)
	where := `
		($1 = '' OR o.status = $1)
		AND ($2 = '' OR o.id::text = $3 OR u.name ILIKE $2)
	`
	from := ` FROM orders o JOIN users u ON u.id = o.user_id WHERE `

	var total int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*)`+from+where,
		string(filter.Status), search, filter.Search,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	rows, err := r.db.pool.Query(ctx, `
		SELECT o.id, o.user_id, o.subtotal, o.discount, o.total, o.status, o.address, o.payment_method,
		       o.latitude, o.longitude, o.promo_code, o.points_earned, o.created_at, o.updated_at`+from+where+`
		ORDER BY o.created_at DESC
		LIMIT $4 OFFSET $5`,
		string(filter.Status), search, filter.Search, pageLimit(filter.Limit), filter.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	orders, err := r.collect(rows)
	return orders, total, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("order status %q: invalid", status)
	}
	tag, err := r.db.pool.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, orderID, status)
	if err != nil {
		r.log.Error().Err(err).Int64("order_id", orderID).Msg("Failed to update order status")
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CancelForUser cancels a pending order, returns its units to stock and takes
// back the points it earned.
func (r *orderRepository) CancelForUser(ctx context.Context, orderID int64, userID uuid.UUID) error {
	return r.db.withTx(ctx, func(tx pgx.Tx) error {
		var status domain.OrderStatus
		var points int64
		err := tx.QueryRow(ctx,
			`SELECT status, points_earned FROM orders WHERE id = $1 AND user_id = $2 FOR UPDATE`, orderID, userID,
		).Scan(&status, &points)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}
		if status != domain.OrderPending {
			return domain.ErrOrderNotCancelable
		}

		if _, err := tx.Exec(ctx,
			`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, orderID, domain.OrderCancelled,
		); err != nil {
			return fmt.Errorf("cancel order %d: %w", orderID, err)
		}
		_, err = tx.Exec(ctx, `
			UPDATE products p
			SET stock = CASE WHEN p.stock IS NULL THEN NULL ELSE p.stock + oi.quantity END,
			    sales = GREATEST(p.sales - oi.quantity, 0)
			FROM order_items oi
			WHERE oi.order_id = $1 AND p.id = oi.product_id`, orderID)
		if err != nil {
			return fmt.Errorf("restock order %d: %w", orderID, err)
		}
		_, err = tx.Exec(ctx, `
			UPDATE loyalty_accounts
			SET points = GREATEST(points - $2, 0),
			    lifetime_points = GREATEST(lifetime_points - $2, 0),
			    updated_at = NOW()
			WHERE user_id = $1`, userID, points)
		if err != nil {
			return fmt.Errorf("reverse points of order %d: %w", orderID, err)
		}
		return nil
	})
}

// HasPurchased ignores cancelled orders.
func (r *orderRepository) HasPurchased(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	var ok bool
	err := r.db.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.user_id = $1 AND oi.product_id = $2 AND o.status <> 'cancelled'
		)`, userID, productID).Scan(&ok)
	return ok, err
}

func (r *orderRepository) UserStats(ctx context.Context, userID uuid.UUID) (domain.UserStats, error) {
	var s domain.UserStats
	err := r.db.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)::bigint, MAX(created_at)
		FROM orders WHERE user_id = $1 AND status <> 'cancelled'`, userID,
	).Scan(&s.OrderCount, &s.TotalSpent, &s.LastOrderAt)
	return s, err
}

func (r *orderRepository) Dashboard(ctx context.Context) (ports.DashboardStats, error) {
	var s ports.DashboardStats
	err := r.db.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM products WHERE is_active),
			(SELECT COALESCE(SUM(total), 0)::bigint FROM orders WHERE status <> 'cancelled')`,
	).Scan(&s.Users, &s.Orders, &s.PendingOrders, &s.Products, &s.Revenue)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to load dashboard stats")
	}
	return s, err
}
