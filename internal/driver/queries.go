package driver

const (
	productColumns = `
		p.id AS id,
		p.name AS name,
		p.description AS description,
		p.price AS price,
		p.color AS color,
		p.image_url AS image_url,
		p.size AS size,
		c.id AS category_id,
		c.name AS category_name,
		c.description AS category_description
	`

	GetProductByIDQuery = `
		MATCH (p:Product {id: $id})-[:IN_CATEGORY]->(c:Category)
		RETURN ` + productColumns + `
		LIMIT 1
	`

	QueryProductsQuery = `
		MATCH (p:Product)-[:IN_CATEGORY]->(c:Category)
		WHERE p.id <> $exclude_id
			AND toUpper(trim(c.name)) IN $categories
			AND toUpper(trim(p.color)) IN $colors
		RETURN ` + productColumns + `
		ORDER BY p.id
	`

	SaveCategoryQuery = `
		MERGE (c:Category {id: $id})
		SET c.name = $name,
			c.description = $description
		RETURN c.id AS id
	`

	SaveProductQuery = `
		MATCH (c:Category {id: $category_id})
		MERGE (p:Product {id: $id})
		SET p.name = $name,
			p.description = $description,
			p.price = $price,
			p.color = $color,
			p.image_url = $image_url,
			p.size = $size
		WITH p, c
		OPTIONAL MATCH (p)-[old:IN_CATEGORY]->()
		DELETE old
		MERGE (p)-[:IN_CATEGORY]->(c)
		RETURN p.id AS id
	`
)
