package bikdecimal

// SumOf returns the exact sum of the decimals produced by f for each item,
// added in order starting from [Zero].
// The scale of the sum is the largest scale among the summands and [Zero],
// so it is never negative.
//
//	total := bikdecimal.SumOf(products, func(p Product) bikdecimal.Decimal {
//		return bikdecimal.ParseOr(p.Price, bikdecimal.Zero)
//	})
func SumOf[T any](items []T, f func(T) Decimal) Decimal {
	sum := Zero
	for _, item := range items {
		sum = sum.Add(f(item))
	}
	return sum
}

// Sum returns the exact sum of the decimals.
// Also see [SumOf].
func Sum(ds ...Decimal) Decimal {
	return SumOf(ds, func(d Decimal) Decimal { return d })
}
