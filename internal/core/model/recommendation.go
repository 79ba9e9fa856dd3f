package model

// MaxRecommendations caps the products in a single recommendation.
const MaxRecommendations = 12

type Recommendation struct {
	Message  string
	Products []Product
}
