package describe

import "errors"

var (
	// ErrInvalidDataset is returned when an Analyzer is constructed from an
	// empty sequence.
	ErrInvalidDataset = errors.New("dataset must contain at least one value")

	// ErrInsufficientData is returned by sample statistics when the dataset
	// is smaller than the minimum the formula needs.
	ErrInsufficientData = errors.New("not enough values for this statistic")

	// ErrDegenerateDataset is returned by kurtosis when every value in the
	// dataset is identical, which would divide by a zero second moment.
	ErrDegenerateDataset = errors.New("all values in the dataset are identical")
)
