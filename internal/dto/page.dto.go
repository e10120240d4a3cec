package dto

type Page[T any] struct {
	Items        []T   `json:"items"`
	CurrentPage  int   `json:"currentPage"`
	PageSize     int   `json:"pageSize"`
	TotalRecords int64 `json:"totalRecords"`
}
