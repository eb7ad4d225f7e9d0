package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectNil bool
		floatVal  float64
		floatErr  bool
		intVal    int
		intErr    bool
	}{
		{name: "JSON number", body: `{"price": 12.5}`, floatVal: 12.5, intErr: true},
		{name: "Integer number", body: `{"price": 4}`, floatVal: 4, intVal: 4},
		{name: "Numeric string", body: `{"price": "19.99"}`, floatVal: 19.99, intErr: true},
		{name: "Padded numeric string", body: `{"price": " 7 "}`, floatVal: 7, intVal: 7},
		{name: "Non-numeric string", body: `{"price": "cheap"}`, floatErr: true, intErr: true},
		{name: "Boolean", body: `{"price": true}`, floatErr: true, intErr: true},
		{name: "NaN string", body: `{"price": "NaN"}`, floatErr: true, intErr: true},
		{name: "Null", body: `{"price": null}`, expectNil: true},
		{name: "Absent", body: `{}`, expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Price *Numeric `json:"price"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			if tt.expectNil {
				assert.Nil(t, req.Price)
				return
			}
			require.NotNil(t, req.Price)

			f, err := req.Price.Float()
			if tt.floatErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.floatVal, f, 1e-9)
			}

			i, err := req.Price.Int()
			if tt.intErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.intVal, i)
			}
		})
	}
}

func TestNumeric_EmptyString(t *testing.T) {
	var n Numeric
	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.True(t, n.IsEmpty())
}

func TestNumeric_IntOutOfRange(t *testing.T) {
	n := NewNumeric("99999999999")
	_, err := n.Int()
	assert.Error(t, err)
}

func TestNumeric_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Numeric{
		"a": NumericFromFloat(9.5),
		"b": NewNumeric("abc"),
		"c": {},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 9.5, "b": "abc", "c": null}`, string(out))
}

func TestParseDishSort(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseDishSort("price-low"))
	assert.Equal(t, SortPriceHigh, ParseDishSort("price-high"))
	assert.Equal(t, SortRating, ParseDishSort("rating"))
	assert.Equal(t, SortNewest, ParseDishSort(""))
	assert.Equal(t, SortNewest, ParseDishSort("price-low; DROP TABLE dishes"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrDishNotFound))
	assert.Equal(t, KindValidation, KindOf(NewValidationError("bad")))
	assert.Equal(t, KindStorage, KindOf(assert.AnError))
}

func TestListResponse_NilBecomesEmpty(t *testing.T) {
	resp := ListResponse[Dish]("Dishes fetched successfully", nil)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Dishes fetched successfully","data":[],"count":0}`, string(out))
}
