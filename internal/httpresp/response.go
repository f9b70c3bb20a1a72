package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type DataResponse[T any] struct {
	Data T `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Item wraps a single record as {"data": ...}.
func Item[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, DataResponse[T]{Data: data})
}

func Created[T any](c *gin.Context, data T) {
	c.JSON(http.StatusCreated, DataResponse[T]{Data: data})
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// PartialResponse is used by reads that tolerate a failed collection:
// Partial is true when the data was computed without it.
type PartialResponse[T any] struct {
	Data    T    `json:"data"`
	Partial bool `json:"partial"`
}

type PartialListResponse[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Partial bool `json:"partial"`
}

func Partial[T any](c *gin.Context, data T, partial bool) {
	c.JSON(http.StatusOK, PartialResponse[T]{Data: data, Partial: partial})
}

func PartialList[T any](c *gin.Context, data []T, partial bool) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PartialListResponse[T]{
		Data:    data,
		Total:   len(data),
		Partial: partial,
	})
}
