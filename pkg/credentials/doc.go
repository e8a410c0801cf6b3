// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package credentials holds the connection credentials for a Botlibre-compatible server.

Credentials are the base URL of the REST API plus the application id issued to
the developer. They are immutable; use a new value to change them on a connection.

	creds, err := credentials.New("https://www.botlibre.com/rest/api", "1234567890")

For the hosted service, use the preset:

	creds := credentials.NewBotlibre("1234567890")

User authentication (user id + password or token) is not part of the credentials;
it travels in the UserConfig passed to connect.
*/
package credentials
