package products

const (
	queryCreate = `
		INSERT INTO products (
			title, artist, description, price_cents, currency, medium, dimensions, stock, is_published
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, artist, description, price_cents, currency, medium, dimensions, COALESCE(image_url, '') AS image_url, stock, is_published, created_at, updated_at
	`

	queryGet = `
		SELECT id, title, artist, description, price_cents, currency, medium, dimensions, COALESCE(image_url, '') AS image_url, stock, is_published, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	queryList = `
		SELECT id, title, artist, description, price_cents, currency, medium, dimensions, COALESCE(image_url, '') AS image_url, stock, is_published, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryCount = `
		SELECT COUNT(*) FROM products
	`

	queryListPublished = `
		SELECT id, title, artist, description, price_cents, currency, medium, dimensions, COALESCE(image_url, '') AS image_url, stock, is_published, created_at, updated_at
		FROM products
		WHERE is_published = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	queryCountPublished = `
		SELECT COUNT(*) FROM products WHERE is_published = true
	`

	queryUpdate = `
		UPDATE products
		SET title = COALESCE($1, title),
		    artist = COALESCE($2, artist),
		    description = COALESCE($3, description),
		    price_cents = COALESCE($4, price_cents),
		    currency = COALESCE($5, currency),
		    medium = COALESCE($6, medium),
		    dimensions = COALESCE($7, dimensions),
		    stock = COALESCE($8, stock),
		    is_published = COALESCE($9, is_published),
		    updated_at = NOW()
		WHERE id = $10
		RETURNING id, title, artist, description, price_cents, currency, medium, dimensions, COALESCE(image_url, '') AS image_url, stock, is_published, created_at, updated_at
	`

	querySetImageURL = `
		UPDATE products
		SET image_url = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, title, artist, description, price_cents, currency, medium, dimensions, COALESCE(image_url, '') AS image_url, stock, is_published, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM products
		WHERE id = $1
	`

	// guarded decrement: only succeeds when enough stock remains
	queryReserveStock = `
		UPDATE products
		SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND stock >= $1
	`

	queryReleaseStock = `
		UPDATE products
		SET stock = stock + $1, updated_at = NOW()
		WHERE id = $2
	`
)
