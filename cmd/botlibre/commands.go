package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/andreabenini/BotLibre/pkg/message"
	"github.com/andreabenini/BotLibre/pkg/sdk"
)

type command struct {
	summary string
	usage   string
	minArgs int
	run     func(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error
}

var commands = map[string]command{
	"chat": {
		summary: "send a message to a bot and print its reply",
		usage:   "<instance> <message...>",
		minArgs: 2,
		run:     runChat,
	},
	"user": {
		summary: "print a user's profile",
		usage:   "<user>",
		minArgs: 1,
		run:     runUser,
	},
	"post": {
		summary: "print a forum post and its replies",
		usage:   "<post-id>",
		minArgs: 1,
		run:     runPost,
	},
	"admins": {
		summary: "list the administrators of a bot, forum, channel, domain or avatar",
		usage:   "<instance|forum|channel|domain|avatar> <id>",
		minArgs: 2,
		run:     runAdmins,
	},
	"learning": {
		summary: "print a bot's learning settings",
		usage:   "<instance>",
		minArgs: 1,
		run:     runLearning,
	},
	"custom": {
		summary: "post an XML document to any API and print the reply",
		usage:   "<api> <file|->",
		minArgs: 2,
		run:     runCustom,
	},
	"speak": {
		summary: "generate speech and print the audio file path",
		usage:   "<text...>",
		minArgs: 1,
		run:     runSpeak,
	},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// errNoResult is returned when an operation yields nothing, which happens
// for empty bodies and for failures swallowed in lenient mode
func errNoResult(what string) error {
	return fmt.Errorf("no %s returned", what)
}

func runChat(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	var chatOpts []message.ChatOption
	if opts.conversation != "" {
		chatOpts = append(chatOpts, message.WithConversation(opts.conversation))
	}
	if opts.speak || opts.voice != "" {
		chatOpts = append(chatOpts, message.WithSpeech(opts.voice))
	}

	chat, err := message.NewChat(args[0], strings.Join(args[1:], " "), chatOpts...).Build()
	if err != nil {
		return err
	}

	reply, err := conn.Chat(ctx, chat)
	if err != nil {
		return err
	}
	if reply == nil {
		return errNoResult("reply")
	}

	fmt.Fprintln(w, reply.Message)
	fmt.Fprintf(w, "conversation: %s\n", reply.Conversation)
	if reply.Emote != "" {
		fmt.Fprintf(w, "emote: %s\n", reply.EmotionalState())
	}
	if reply.Speech != "" {
		fmt.Fprintf(w, "speech: %s\n", reply.Speech)
	}
	return nil
}

func runUser(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	user, err := conn.FetchUser(ctx, &message.UserConfig{Base: message.Base{User: args[0]}})
	if err != nil {
		return err
	}
	if user == nil {
		return errNoResult("user")
	}

	avatar := user.Avatar
	if avatar == "" {
		avatar = conn.DefaultUserImage()
	}
	fmt.Fprintf(w, "user: %s\n", user.User)
	fmt.Fprintf(w, "name: %s\n", user.DisplayName())
	fmt.Fprintf(w, "joined: %s\n", user.Joined)
	fmt.Fprintf(w, "avatar: %s\n", avatar)
	if user.IsFlagged {
		fmt.Fprintf(w, "flagged: %s\n", user.FlaggedReason)
	}
	if user.Bio != "" {
		fmt.Fprintf(w, "\n%s\n", user.Bio)
	}
	return nil
}

func runPost(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	post, err := conn.FetchForumPost(ctx, &message.ForumPostConfig{ID: args[0]})
	if err != nil {
		return err
	}
	if post == nil {
		return errNoResult("post")
	}

	fmt.Fprintf(w, "%s\n", post.Topic)
	fmt.Fprintf(w, "by %s on %s, %d replies\n\n", post.Creator, post.CreationDate, post.ReplyCount)
	fmt.Fprintln(w, post.Details)
	for _, reply := range post.Replies {
		fmt.Fprintf(w, "\n> %s: %s\n", reply.Creator, reply.Details)
	}
	return nil
}

func runAdmins(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	content, err := contentFor(args[0], args[1])
	if err != nil {
		return err
	}

	doc, err := conn.GetAdmins(ctx, content)
	if err != nil {
		return err
	}
	if doc == nil {
		return errNoResult("admin list")
	}

	admins, err := message.ParseAdmins(doc)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		fmt.Fprintln(w, admin.User)
	}
	return nil
}

// contentFor returns a content payload of the named type identified by id
func contentFor(kind, id string) (message.Content, error) {
	medium := message.WebMedium{ID: id}
	switch kind {
	case "instance", "bot":
		return &message.InstanceConfig{WebMedium: medium}, nil
	case "forum":
		return &message.ForumConfig{WebMedium: medium}, nil
	case "channel":
		return &message.ChannelConfig{WebMedium: medium}, nil
	case "domain":
		return &message.DomainConfig{WebMedium: medium}, nil
	case "avatar":
		return &message.AvatarConfig{WebMedium: medium}, nil
	}
	return nil, fmt.Errorf("unknown content type %q", kind)
}

func runLearning(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	learning, err := conn.GetLearning(ctx, &message.InstanceConfig{WebMedium: message.WebMedium{ID: args[0]}})
	if err != nil {
		return err
	}
	if learning == nil {
		return errNoResult("learning settings")
	}

	fmt.Fprintf(w, "learning mode: %s\n", learning.LearningMode)
	fmt.Fprintf(w, "correction mode: %s\n", learning.CorrectionMode)
	fmt.Fprintf(w, "comprehension: %t\n", learning.EnableComprehension)
	fmt.Fprintf(w, "emoticons: %t\n", learning.EnableEmoticons)
	return nil
}

func runSpeak(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	file, err := conn.TTS(ctx, &message.Speech{Text: strings.Join(args, " "), Voice: opts.voice})
	if err != nil {
		return err
	}
	if file == "" {
		return errNoResult("speech")
	}
	fmt.Fprintln(w, file)
	return nil
}

func runCustom(ctx context.Context, conn *sdk.Connection, opts *options, args []string, w io.Writer) error {
	var data []byte
	var err error
	if args[1] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[1])
	}
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	req, err := newRawPayload(data)
	if err != nil {
		return err
	}

	out, err := conn.Custom(ctx, args[0], req, &rawPayload{})
	if err != nil {
		return err
	}
	if out == nil {
		return errNoResult("reply")
	}
	fmt.Fprintln(w, message.Indent(out.(*rawPayload).body))
	return nil
}

// rawPayload is an arbitrary XML document. Credentials are set as
// attributes of its root element.
type rawPayload struct {
	doc  *etree.Document
	body []byte
}

func newRawPayload(data []byte) (*rawPayload, error) {
	doc, err := message.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing request: %w", err)
	}
	return &rawPayload{doc: doc}, nil
}

func (p *rawPayload) AddCredentials(auth message.Auth) {
	root := p.doc.Root()
	root.CreateAttr("application", auth.Application)
	if auth.User != "" {
		root.CreateAttr("user", auth.User)
		root.CreateAttr("token", auth.Token)
	}
	if auth.Domain != "" {
		root.CreateAttr("domain", auth.Domain)
	}
}

func (p *rawPayload) ToXML() ([]byte, error) {
	return p.doc.WriteToBytes()
}

func (p *rawPayload) ParseXML(data []byte) error {
	if _, err := message.ParseDocument(data); err != nil {
		return err
	}
	p.body = data
	return nil
}
