// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTPS transport for the Botlibre XML API.

A transport performs one blocking request/response exchange: it sends an XML
document to an endpoint URL and returns the raw response body, or an error
for network failures, timeouts and non-2xx statuses. Timeouts, TLS and
connection reuse are the transport's business; the connection in package sdk
never retries.

# TLS Configuration

The package recommends TLS 1.3 with fallback to TLS 1.2:

	config := transport.DefaultHTTPSConfig()
	// MinTLSVersion: TLS 1.2
	// MaxTLSVersion: TLS 1.3
	// Timeout:       30s

# Client Usage

	client := transport.NewHTTPSClient(&transport.HTTPSConfig{
	    MinTLSVersion: transport.TLS12,
	    RootCAs:       certPool,
	    Timeout:       10 * time.Second,
	})

	body, err := client.Send(ctx, transport.NewPOST("https://www.botlibre.com/rest/api/post-chat", xml))

POST requests carry Content-Type and Accept headers of application/xml.
GET requests carry no body.

# Errors

A non-2xx status is returned as [*StatusError] holding the status code and
the start of the body:

	var se *transport.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusForbidden {
	    ...
	}
*/
package transport
