package compute

import "fmt"

// CosineSimilarityError is returned when the operands of a cosine similarity
// have different lengths. LHS and RHS are the two lengths as given.
type CosineSimilarityError struct {
	LHS int
	RHS int
}

func (e CosineSimilarityError) Error() string {
	return fmt.Sprintf("invalid vectors: vectors must have the same length for similarity calculation. LHS: %d, RHS: %d", e.LHS, e.RHS)
}

// EuclideanDistanceError is returned when the operands of a euclidean distance
// have different lengths. LHS and RHS are the two lengths as given.
type EuclideanDistanceError struct {
	LHS int
	RHS int
}

func (e EuclideanDistanceError) Error() string {
	return fmt.Sprintf("invalid vectors: vectors must have the same length for distance calculation. LHS: %d, RHS: %d", e.LHS, e.RHS)
}
