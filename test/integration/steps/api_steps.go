// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/cucumber/godog"
)

// placeholderPattern matches {account:Name}, {user:email}, {notification:Title}
// and {alias:name} tokens in request paths and bodies.
var placeholderPattern = regexp.MustCompile(`\{(account|user|notification|alias):([^}]+)\}`)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// iAmAuthenticatedAs creates the user if needed and mints an access token for
// it, the way the hosted auth provider would.
func iAmAuthenticatedAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)

	user, err := tc.ensureUser(ctx, email)
	if err != nil {
		return err
	}

	token, err := tc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to mint access token: %w", err)
	}

	tc.requestHeaders["Authorization"] = "Bearer " + token
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	delete(tc.requestHeaders, "Authorization")
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, []byte(body.Content))
}

func iRememberTheResponseFieldAs(ctx context.Context, field, alias string) error {
	tc := GetTestContext(ctx)
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	tc.aliases[alias] = fmt.Sprintf("%v", value)
	return nil
}

// doRequest resolves placeholders and performs the HTTP request.
func (tc *TestContext) doRequest(method, path string, body []byte) error {
	path = tc.resolvePlaceholders(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader([]byte(tc.resolvePlaceholders(string(body))))
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.response = resp
	tc.responseBody = responseBody
	return nil
}

// resolvePlaceholders replaces registry tokens with the IDs created during
// seeding.
func (tc *TestContext) resolvePlaceholders(input string) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		kind, name := groups[1], groups[2]

		switch kind {
		case "account":
			if account, ok := tc.accounts[name]; ok {
				return account.ID.String()
			}
		case "user":
			if user, ok := tc.users[name]; ok {
				return user.ID.String()
			}
		case "notification":
			if notification, ok := tc.notifications[name]; ok {
				return notification.ID.String()
			}
		case "alias":
			if value, ok := tc.aliases[name]; ok {
				return value
			}
		}
		return match
	})
}
