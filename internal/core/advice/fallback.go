package advice

import (
	"fmt"
	"strings"

	"github.com/agenthands/wardrobe/internal/core/common"
)

var warmHues = []string{
	"RED", "ORANGE", "YELLOW", "GOLD", "BROWN", "BEIGE", "CAMEL", "TAN",
	"CORAL", "PEACH", "MUSTARD", "RUST", "BURGUNDY", "CREAM", "KHAKI",
}

type categoryTips struct {
	keywords  []string
	occasions string
	technique string
}

// First entry whose keyword appears in the category wins. JUMPSUIT must be
// checked before SUIT.
var tipsByCategory = []categoryTips{
	{
		keywords:  []string{"DRESS", "JUMPSUIT"},
		occasions: "weddings, evening events and summer parties",
		technique: "define the waist with a slim belt and keep footwear simple so the silhouette stays clean",
	},
	{
		keywords:  []string{"BLAZER", "SUIT"},
		occasions: "office days, client meetings and smart dinners",
		technique: "wear it open over a fitted top and push the sleeves up slightly for a relaxed line",
	},
	{
		keywords:  []string{"COAT", "JACKET"},
		occasions: "cold-weather commutes, city breaks and weekend outings",
		technique: "layer it over fine knitwear and keep the lower half slim to balance the volume",
	},
	{
		keywords:  []string{"SHIRT", "TOP", "KNIT"},
		occasions: "workdays, brunch and relaxed dinners",
		technique: "try a half tuck into high-waisted bottoms to lengthen the legs",
	},
	{
		keywords:  []string{"TROUSER", "JEAN", "SKIRT", "SHORT"},
		occasions: "everyday errands, casual Fridays and weekend plans",
		technique: "match the hem to your shoes and pair the fit with a more fitted or more relaxed top for contrast",
	},
	{
		keywords:  []string{"SHOE", "BAG", "ACCESSOR"},
		occasions: "both workdays and evenings out",
		technique: "let it be the single statement piece and keep the rest of the outfit understated",
	},
}

var defaultTips = categoryTips{
	occasions: "everyday wear and casual gatherings",
	technique: "keep the rest of the outfit simple and balance fitted pieces with looser ones",
}

// Fallback builds templated advice from the product attributes alone. The
// output depends only on its arguments.
func Fallback(color, category, productName string) string {
	c := common.Normalize(color)
	tips := tipsFor(common.Normalize(category))

	jewelry := "silver or white-gold jewelry with black or gray leather accessories"
	if isWarm(c) {
		jewelry = "gold jewelry, such as delicate hoops or a fine chain, with tan or cognac leather accessories"
	}

	colorName := strings.ToLower(c)
	if colorName == "" {
		colorName = "this"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Styling tips for your %s:\n", strings.TrimSpace(c+" "+strings.TrimSpace(productName)))
	fmt.Fprintf(&b, "Jewelry & Accessories: %s.\n", capitalize(jewelry))
	fmt.Fprintf(&b, "Occasions & Settings: Perfect for %s.\n", tips.occasions)
	fmt.Fprintf(&b, "Color Coordination: Let the %s shade lead and pair it with neutrals like white, navy, black or beige.\n", colorName)
	fmt.Fprintf(&b, "Styling Techniques: %s.", capitalize(tips.technique))
	return b.String()
}

func isWarm(color string) bool {
	for _, hue := range warmHues {
		if strings.Contains(color, hue) {
			return true
		}
	}
	return false
}

func tipsFor(category string) categoryTips {
	for _, t := range tipsByCategory {
		for _, k := range t.keywords {
			if strings.Contains(category, k) {
				return t
			}
		}
	}
	return defaultTips
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
