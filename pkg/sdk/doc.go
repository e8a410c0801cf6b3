// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package sdk provides the client connection to a Botlibre server.

A [Connection] exposes one method per remote operation. Every operation runs
the same pipeline:

 1. the request config is checked (a nil config fails with [ErrInvalidArgument])
 2. the connection's application id, current user token and current domain
    are attached to the config, exactly once
 3. the config is encoded to XML ([ErrSerialization] on failure, the
    transport is not contacted)
 4. the XML is POSTed to the server URL joined with the endpoint path
    ([ErrTransport] on failure)
 5. an empty body yields no result
 6. the body is decoded into a fresh result config ([ErrDeserialization]
    on failure)

The endpoint table maps each [Operation] to its path, its result and its
effect on the session. Two operations are irregular: GetAdmins returns a
generic [etree.Document], and TTS returns the raw body, which references an
audio file.

# Usage

	creds, err := credentials.New("https://www.botlibre.com/rest/api", "1234567890")
	if err != nil {
	    return err
	}

	conn, err := sdk.NewConnection(&sdk.ConnectionConfig{
	    Credentials: creds,
	    HTTPSConfig: transport.DefaultHTTPSConfig(),
	})
	if err != nil {
	    return err
	}

	user, err := conn.Connect(ctx, &message.UserConfig{Base: message.Base{User: "alice"}, Password: "secret"})
	...
	reply, err := conn.Chat(ctx, &message.ChatConfig{Base: message.Base{Instance: "165"}, Message: "hello"})

# Session

Connect and CreateUser store the returned user, without its password, as
the current user. Its id and token are attached to every later request.
A failed Connect clears the current user. Disconnect clears the user and
the domain without contacting the server; SetCredentials keeps them.

# Error Modes

In [ErrorModeStrict] (the default) transport and deserialization failures are
returned. In [ErrorModeLenient] they are logged at WARN and the operation
returns no result and a nil error; the failure is still available from
[Connection.LastError]. Invalid arguments and serialization failures are
returned in both modes, and so is a malformed admin list.

# Debug

With debug enabled, every outgoing and incoming payload is logged at INFO
with its operation, URL and request id. The request id is also sent in the
X-Request-ID header.
*/
package sdk
