package constant

const (
	CANT_FIND                = "%s not found"
	SOMETHING_WENT_WRONG     = "something went wrong"
	PAGE_NUMBER_OUT_OF_RANGE = "page number out of range"
	INVALID_PAGE_NUMBER      = "invalid page number"
	TOO_MANY_REQUESTS        = "too many requests"
	UPDATED                  = "Updated successfully"
)
