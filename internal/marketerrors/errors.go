package marketerrors

import "errors"

// Repository-level errors
var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrLabelNotFound   = errors.New("label not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// business logic errors
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrGenreLimitExceeded   = errors.New("genre selection limit exceeded")
	ErrTermsNotAccepted     = errors.New("terms and conditions not accepted")
	ErrInvalidBidAmount     = errors.New("invalid bid amount")
	ErrBidBelowCurrent      = errors.New("bid amount not above current bid")
	ErrAuctionNotLive       = errors.New("auction is not live")
	ErrQuotaExceeded        = errors.New("post quota exceeded")
	ErrTrialExpired         = errors.New("trial period has expired")
)
