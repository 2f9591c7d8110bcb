package rebalance

// DefaultCategoryAccounts maps a spending category to the account it is
// normally charged to. Learned override rules always take precedence over
// these entries; they are the last resort before giving up on a suggestion.
// Injected into the engine at construction so tests can swap in their own
// table.
var DefaultCategoryAccounts = map[string]string{
	"식비":    "토스뱅크",
	"카페/간식": "토스뱅크",
	"편의점":   "토스뱅크",
	"교통":    "국민은행",
	"주거/통신": "국민은행",
	"의료":    "국민은행",
	"쇼핑":    "신한카드",
	"구독":    "신한카드",
	"여행":    "토스뱅크",
}
