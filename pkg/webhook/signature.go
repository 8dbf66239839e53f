package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Signature header format (gateway convention): "t=<unix seconds>,v1=<hex hmac>"
// where the HMAC-SHA256 is computed over "<unix seconds>.<raw body>" with the
// shared endpoint secret.

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrStaleTimestamp   = errors.New("webhook timestamp outside tolerance")
)

// Sign produces the signature header value for a payload at the given time.
func Sign(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, computeMAC(payload, secret, ts))
}

// Verify checks the signature header against the raw payload. The timestamp
// must be within tolerance of now to defeat replay of captured requests.
func Verify(payload []byte, header, secret string, tolerance time.Duration) error {
	ts, mac, err := parseHeader(header)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	at := time.Unix(ts, 0).UTC()
	if at.Before(now.Add(-tolerance)) || at.After(now.Add(tolerance)) {
		return ErrStaleTimestamp
	}

	want := computeMAC(payload, secret, ts)
	if !hmac.Equal([]byte(mac), []byte(want)) {
		return ErrInvalidSignature
	}
	return nil
}

func computeMAC(payload []byte, secret string, ts int64) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(strconv.FormatInt(ts, 10)))
	h.Write([]byte("."))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

func parseHeader(header string) (ts int64, mac string, err error) {
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts, err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, "", ErrInvalidSignature
			}
		case "v1":
			mac = v
		}
	}
	if ts == 0 || mac == "" {
		return 0, "", ErrInvalidSignature
	}
	return ts, mac, nil
}
