package errors

type Identifier int

const (
	UnknownErrorID Identifier = iota
	WrongJsonErrorID
)

// asset errors
const (
	InvalidAssetIdErrorID Identifier = iota + 100
	TransactionNotAcceptedErrorID
)
