package sms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewboy/see-me/seemeErrs"
)

func TestResult(t *testing.T) {
	res := ResultSt{"result": "OK", "balance": "1234.5", "code": 0.0}

	require.Equal(t, "OK", res.Result())
	require.Equal(t, "0", res.GetString("code"))
	require.Equal(t, "", res.GetString("missing"))

	balance, err := res.GetFloat("balance")
	require.Nil(t, err)
	require.Equal(t, 1234.5, balance)

	_, err = res.GetFloat("missing")
	require.ErrorIs(t, err, seemeErrs.FieldNotFound)

	_, err = ResultSt{"balance": "n/a"}.GetFloat("balance")
	require.NotNil(t, err)
}
