package callback

import "fmt"

func (a Unknown) Encode() string           { return a.Raw }
func (a Malformed) Encode() string         { return a.Raw }
func (BackToCategories) Encode() string    { return dataBackToCategories }
func (a BackToCategory) Encode() string    { return fmt.Sprintf("%s%d", prefixBackToCategory, a.CategoryID) }
func (a BackToSubcategory) Encode() string { return fmt.Sprintf("%s%d", prefixBackToSubcategory, a.SubcategoryID) }
func (GoToCart) Encode() string            { return dataGoToCart }
func (BackToMain) Encode() string          { return dataBackToMain }
func (CancelPayment) Encode() string       { return dataCancelPayment }
func (Noop) Encode() string                { return dataNoop }
func (CancelRating) Encode() string        { return dataCancelRating }
func (a AddToFavorites) Encode() string    { return fmt.Sprintf("%s%d", prefixAddToFavorites, a.ProductID) }
func (a ShowReviews) Encode() string       { return fmt.Sprintf("%s%d", prefixReviews, a.ProductID) }
func (a RateProduct) Encode() string       { return fmt.Sprintf("%s%d", prefixRateProduct, a.ProductID) }
func (a Rate) Encode() string              { return fmt.Sprintf("%s%d_%d", prefixRate, a.ProductID, a.Stars) }
func (a CartItem) Encode() string          { return fmt.Sprintf("%s%s_%d", prefixCart, a.Op, a.CartItemID) }
func (a OrderDetails) Encode() string      { return fmt.Sprintf("%s%d", prefixOrderDetails, a.OrderID) }
func (a ContactAbout) Encode() string      { return fmt.Sprintf("%s%d", prefixContactAbout, a.OrderID) }
func (a CancelOrder) Encode() string       { return fmt.Sprintf("%s%d", prefixCancelOrder, a.OrderID) }
func (a Category) Encode() string          { return fmt.Sprintf("%s%d", prefixCategory, a.CategoryID) }
func (a Subcategory) Encode() string       { return fmt.Sprintf("%s%d", prefixSubcategory, a.SubcategoryID) }

func (a Quantity) Encode() string {
	prefix := prefixQtyInc
	if a.Direction == QtyDec {
		prefix = prefixQtyDec
	}
	return fmt.Sprintf("%s%d_%d", prefix, a.ProductID, a.Current)
}

func (a AddToCart) Encode() string {
	return fmt.Sprintf("%s%d_%d", prefixAddToCart, a.ProductID, max(a.Quantity, 1))
}

func (a Pay) Encode() string {
	if a.Amount == nil {
		return fmt.Sprintf("%s%s_%d", prefixPay, a.Provider, a.OrderID)
	}
	return fmt.Sprintf("%s%s_%d_%d", prefixPay, a.Provider, a.OrderID, *a.Amount)
}
