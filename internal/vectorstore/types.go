package vectorstore

// a search result: the ordinal of a stored vector and its squared distance to the query
type Hit struct {
	Ordinal  int
	Distance float64
}
