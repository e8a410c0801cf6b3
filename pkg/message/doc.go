// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package message provides the request and response payloads of the Botlibre XML API.

Every payload implements [Serializable]: it can be given the connection's
authentication ([Auth]), encoded to its XML document and decoded from one.
Each payload type owns its root element:

	UserConfig          <user>
	UserMessageConfig   <user-message>
	ChatConfig          <chat>
	ChatResponse        <response>
	ForumPostConfig     <forum-post>
	ForumConfig         <forum>
	ResponseConfig      <response>
	InstanceConfig      <instance>
	DomainConfig        <domain>
	ChannelConfig       <channel>
	AvatarConfig        <avatar>
	AvatarMedia         <avatar-media>
	AvatarMessage       <avatar-message>
	LearningConfig      <learning>
	Speech              <speech>

Payloads that describe web content (instances, forums, domains, channels,
avatars) also implement [Content], whose Type is used to build endpoint
paths such as thumbs-up-instance.

# Wire Format

Scalar fields travel as attributes and long text as child elements:

	<chat application="123" instance="165" conversation="42"><message>hi</message></chat>

There is no envelope and no version attribute; the root element alone
identifies the payload. Decoding rejects documents whose root element does
not match the payload type ([ErrUnexpectedRoot]) and documents that are not
well-formed.

# Mode Sets

The allowed values of the access, learning, correction, channel and bot mode
attributes are closed sets, modelled as string types with Valid and Parse
functions (see [AccessModes], [LearningModes], ...).

# Untyped Responses

Admin lists have no typed model; [ParseDocument] returns a generic
[etree.Document] and [ParseAdmins] extracts the users from it.
*/
package message
