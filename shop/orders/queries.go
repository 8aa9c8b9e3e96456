package orders

const (
	queryCreate = `
		INSERT INTO orders (
			email, items, address, subtotal_cents, shipping_cents, total_cents, currency,
			payment_intent_id, shipping_rate_id, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, email, items, address, subtotal_cents, shipping_cents, total_cents, currency, COALESCE(payment_intent_id, '') AS payment_intent_id, COALESCE(shipping_rate_id, '') AS shipping_rate_id, status, created_at, updated_at
	`

	queryGet = `
		SELECT id, email, items, address, subtotal_cents, shipping_cents, total_cents, currency, COALESCE(payment_intent_id, '') AS payment_intent_id, COALESCE(shipping_rate_id, '') AS shipping_rate_id, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	queryGetByIntent = `
		SELECT id, email, items, address, subtotal_cents, shipping_cents, total_cents, currency, COALESCE(payment_intent_id, '') AS payment_intent_id, COALESCE(shipping_rate_id, '') AS shipping_rate_id, status, created_at, updated_at
		FROM orders
		WHERE payment_intent_id = $1
	`

	queryListByEmail = `
		SELECT id, email, items, address, subtotal_cents, shipping_cents, total_cents, currency, COALESCE(payment_intent_id, '') AS payment_intent_id, COALESCE(shipping_rate_id, '') AS shipping_rate_id, status, created_at, updated_at
		FROM orders
		WHERE email = $1
		ORDER BY created_at DESC
	`

	queryList = `
		SELECT id, email, items, address, subtotal_cents, shipping_cents, total_cents, currency, COALESCE(payment_intent_id, '') AS payment_intent_id, COALESCE(shipping_rate_id, '') AS shipping_rate_id, status, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCount = `
		SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1)
	`

	queryUpdateStatus = `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3)
		RETURNING id, email, items, address, subtotal_cents, shipping_cents, total_cents, currency, COALESCE(payment_intent_id, '') AS payment_intent_id, COALESCE(shipping_rate_id, '') AS shipping_rate_id, status, created_at, updated_at
	`
)
