package application

const otherSentinel = "Other"

// normalize resolves a "choose from list or type other" pair to one value:
// an empty selection stays empty, the Other sentinel yields the free-text
// value, anything else is returned verbatim.
func normalize(selected, other string) string {
	if selected == "" {
		return ""
	}
	if selected == otherSentinel {
		return other
	}
	return selected
}

// normalized returns a copy of the input with every select-or-other pair
// collapsed. The Other* fields are never persisted.
func (in FormInput) normalized() FormInput {
	out := in
	out.Code = normalize(in.Code, in.OtherCode)
	out.Product = normalize(in.Product, in.OtherProduct)
	out.Bank = normalize(in.Bank, in.OtherBank)
	out.SourceChannel = normalize(in.SourceChannel, in.OtherSourceChannel)
	out.PropertyType = normalize(in.PropertyType, in.OtherPropertyType)
	out.Category = normalize(in.Category, in.OtherCategory)
	out.OtherCode = ""
	out.OtherProduct = ""
	out.OtherBank = ""
	out.OtherSourceChannel = ""
	out.OtherPropertyType = ""
	out.OtherCategory = ""
	return out
}
