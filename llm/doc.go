// Package llm provides a provider-neutral abstraction layer for Large Language Model (LLM) APIs.
//
// This package defines the common types, the uniform provider contract, the
// validation rules, and the error taxonomy that allow the rest of the
// codebase to talk to multiple LLM vendors (OpenAI-compatible endpoints,
// Gemini, Anthropic, DeepSeek-style and locally-hosted vendors) without
// being coupled to any vendor's wire protocol.
//
// # Core Concepts
//
//  1. Messages: the Message type represents a conversation message with a
//     role (system, user, assistant) and plain text content. A conversation
//     is an ordered []Message owned by the caller; this package never
//     mutates it.
//
//  2. Provider contract: the Provider interface exposes the five uniform
//     operations (SendMessage, SendMessageStream, SendMessageWithThinking,
//     FetchModels, TestConnection). Implementations live in the vendor
//     subpackages and handle protocol details internally.
//
//  3. Streaming: StreamHandlers carries the three callbacks of a streaming
//     call. OnToken fires zero or more times in wire order; exactly one of
//     OnComplete or OnError fires afterwards, once.
//
//  4. Thinking: ThinkingResponse pairs an optional reasoning trace with the
//     answer text. Recovering the trace is best-effort; Content is always
//     populated.
//
//  5. Errors: the Error type provides a closed taxonomy (validation,
//     configuration, vendor_api, dependency) with a structured context bag
//     and errors.As-friendly predicates.
//
// # Extension Points
//
// To add a new vendor:
//  1. Implement the Provider interface in a subpackage
//  2. Translate between vendor types and llm package types
//  3. Convert vendor errors into llm.Error values
//  4. Register a constructor with the factory package
package llm
