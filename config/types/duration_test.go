package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	require.Equal(t, time.Second*90, d.Duration)

	require.Error(t, d.UnmarshalText([]byte("ninety seconds")))
}

func TestDurationMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDuration(time.Second * 5))
	require.NoError(t, err)
	require.JSONEq(t, `"5s"`, string(data))
}
