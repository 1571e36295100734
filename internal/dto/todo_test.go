package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/dto"
)

func TestDateUnmarshalDateOnly(t *testing.T) {
	t.Parallel()

	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-19"`), &d))
	require.NotNil(t, d.Ptr())
	assert.Equal(t, time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC), *d.Ptr())
}

func TestDateUnmarshalRFC3339(t *testing.T) {
	t.Parallel()

	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-19T15:04:05Z"`), &d))
	require.NotNil(t, d.Ptr())
	assert.Equal(t, 15, d.Ptr().Hour())
}

func TestDateUnmarshalNullAndEmpty(t *testing.T) {
	t.Parallel()

	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Nil(t, d.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.Nil(t, d.Ptr())
}

func TestDateUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var d dto.Date
	err := json.Unmarshal([]byte(`"not-a-date"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestUpdateRequestAbsentVsNull(t *testing.T) {
	t.Parallel()

	var absent dto.UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &absent))
	assert.False(t, absent.Description.Set)
	assert.False(t, absent.StartDate.Set)
	assert.False(t, absent.Deadline.Set)

	var null dto.UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":null,"deadline":null}`), &null))
	assert.True(t, null.Description.Set)
	assert.Nil(t, null.Description.Value)
	assert.True(t, null.Deadline.Set)
	assert.Nil(t, null.Deadline.Ptr())
	assert.False(t, null.StartDate.Set)
}

func TestUpdateRequestMarshalOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	completed := true
	b, err := json.Marshal(dto.UpdateTodoRequest{Completed: &completed})
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":true}`, string(b))
}

func TestUpdateRequestMarshalKeepsExplicitNull(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.UpdateTodoRequest{Description: dto.NullString()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":null}`, string(b))
}

func TestDateFromString(t *testing.T) {
	t.Parallel()

	d, err := dto.DateFromString("")
	require.NoError(t, err)
	assert.Nil(t, d.Ptr())

	d, err = dto.DateFromString("2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, d.Ptr())
	assert.Equal(t, "2026-09-01", d.Ptr().Format("2006-01-02"))

	_, err = dto.DateFromString("garbage")
	assert.Error(t, err)
}
