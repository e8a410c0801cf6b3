// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package botlibre is a client library for the Botlibre REST API, the XML over
HTTP(S) interface of the Botlibre bot hosting platform.

# Overview

A client builds a typed request payload, attaches the application id and the
current user's session, POSTs it as XML to an endpoint below the server's API
base URL and decodes the XML reply into a typed result. Operations cover users,
chat with bots, avatars, forums and posts, bot training, ratings, subscriptions
and text-to-speech.

# Package Structure

	github.com/andreabenini/BotLibre/pkg/sdk         - Connection and all remote operations
	github.com/andreabenini/BotLibre/pkg/message     - Request and response payloads, builders
	github.com/andreabenini/BotLibre/pkg/credentials - Server URL and application id
	github.com/andreabenini/BotLibre/pkg/transport   - HTTP(S) transport with TLS 1.2/1.3
	github.com/andreabenini/BotLibre/pkg/emotion     - Emotional states reported by bots
	github.com/andreabenini/BotLibre/internal/config - YAML configuration for the CLI
	github.com/andreabenini/BotLibre/internal/fakeserver - In-memory server for tests
	github.com/andreabenini/BotLibre/cmd/botlibre    - Command line client

# Quick Start

To chat with a bot:

	import (
	    "github.com/andreabenini/BotLibre/pkg/credentials"
	    "github.com/andreabenini/BotLibre/pkg/message"
	    "github.com/andreabenini/BotLibre/pkg/sdk"
	)

	conn, err := sdk.NewConnection(&sdk.ConnectionConfig{
	    Credentials: credentials.NewBotlibre("your-application-id"),
	})

	// Optional: connect a user to act on their behalf
	_, err = conn.Connect(ctx, &message.UserConfig{
	    Base:     message.Base{User: "alice"},
	    Password: "password",
	})

	chat, err := message.NewChat("165", "Hello").Build()
	reply, err := conn.Chat(ctx, chat)
	fmt.Println(reply.Message)

# Error Handling

Every failure is wrapped around one of the sentinel errors in package sdk
(ErrInvalidArgument, ErrSerialization, ErrTransport, ErrDeserialization) and
can be tested with errors.Is. In lenient mode, transport and decoding failures
are logged and reported as a missing result instead; the most recent failure
is kept in Connection.LastError.

# License

BSD-2-Clause License
*/
package botlibre
