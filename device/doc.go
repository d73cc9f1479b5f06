// Package device drives the download of recorded tracks from an SQ100/GH-625
// watch over an already-open serial connection.
//
// # Overview
//
// A Session owns the serial handle and performs the strictly half-duplex
// request/response exchange the watch requires:
//   - enumerating the on-device track catalog
//   - downloading track storage in bounded-size chunks
//   - retrying requests on timeout or transmission corruption
//   - decoding downloaded storage into typed tracks
//
// # Basic Usage
//
// The caller opens the port; the Session only uses it:
//
//	port, err := serial.Open("/dev/ttyUSB0", &serial.Mode{BaudRate: 115200})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session := device.NewSession(port)
//
//	summaries, err := session.ListTracks(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracks, err := session.FetchTracks(ctx, summaries)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// The watch's protocol permits a single request-response pair in flight per
// connection, so a Session is deliberately not safe for concurrent use: a
// second call while one is in flight fails with ErrSessionBusy. Multiple
// Sessions against different ports are independent.
//
// # Reliability
//
// Each request is retried with identical bytes on timeout or frame
// corruption, up to the configured retry budget (all commands are
// read-only, so re-sending is safe). An exhausted budget surfaces as
// *LinkExhaustedError and aborts the enclosing operation; no partial
// catalog or partial track is ever returned. Cancellation is cooperative
// and takes effect between requests, never mid-frame.
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	session := device.NewSession(port,
//	    device.WithTimeout(2*time.Second),
//	    device.WithMaxRetries(5),
//	    device.WithChunkSize(512),
//	    device.WithLogger(myLogger),
//	    device.WithProgressCallback(progressFunc),
//	)
package device
