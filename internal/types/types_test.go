package types_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/localnerve/planning-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignment struct {
	ConsultantID string `json:"consultantId"`
}

func TestFlexListAcceptsLegacySingleObject(t *testing.T) {
	var list types.FlexList[assignment]
	require.NoError(t, json.Unmarshal([]byte(`{"consultantId":"cons-1"}`), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "cons-1", list[0].ConsultantID)

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"consultantId":"cons-1"}]`, string(out))
}

func TestFlexListArrayAndNull(t *testing.T) {
	var list types.FlexList[assignment]
	require.NoError(t, json.Unmarshal([]byte(`[{"consultantId":"a"},{"consultantId":"b"}]`), &list))
	assert.Len(t, list, 2)

	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestFlexUint64(t *testing.T) {
	var n types.FlexUint64
	require.NoError(t, json.Unmarshal([]byte(`"2048"`), &n))
	assert.Equal(t, uint64(2048), n.Uint64())
	require.NoError(t, json.Unmarshal([]byte(`512`), &n))
	assert.Equal(t, uint64(512), n.Uint64())
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{types.Errorf(types.ErrNotFound, "ticket %s", "t1"), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", types.ErrInvalidStatus), http.StatusBadRequest},
		{types.ErrNoCompletedDocument, http.StatusBadRequest},
		{types.ErrMissingJobReference, http.StatusBadRequest},
		{types.ErrPathTraversal, http.StatusBadRequest},
		{types.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		{&types.CustomError{Code: http.StatusConflict, Type: "conflict"}, http.StatusConflict},
	}
	for _, tc := range cases {
		status, _ := types.StatusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

func TestValidationErrorMapsToBadRequest(t *testing.T) {
	err := fmt.Errorf("patch job: %w", &types.ValidationError{Message: "invalid job patch", Details: []string{"status: must be one of pending, paid, completed"}})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	code, kind := types.StatusFor(err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_input", kind)

	var ve *types.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Details, 1)
}
