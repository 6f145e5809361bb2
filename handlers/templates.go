package handlers

import (
	"html/template"
)

// Minimal server-rendered views. The handlers only select a view and feed
// it data; presentation is intentionally bare.
const pageTemplates = `
{{define "home.html"}}<!DOCTYPE html>
<html><head><title>inkpaste</title></head>
<body>
<h1>inkpaste</h1>
<p>Share text snippets with a short link.</p>
<p><a href="/create">New paste</a> | <a href="/about">About</a></p>
</body></html>{{end}}

{{define "create.html"}}<!DOCTYPE html>
<html><head><title>inkpaste - new paste</title></head>
<body>
<h1>New paste</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/create">
<p><input type="text" name="title" placeholder="Title"></p>
<p><textarea name="content" rows="20" cols="80"></textarea></p>
<p><input type="text" name="syntax" placeholder="Syntax (optional)"></p>
<p><select name="expiration">
<option value="never">Never</option>
<option value="30s">30 seconds</option>
<option value="3h">3 hours</option>
<option value="24h">24 hours</option>
<option value="1w">1 week</option>
<option value="1m">1 month</option>
</select></p>
<p><label><input type="checkbox" name="is_password_protected"> Password protect</label>
<input type="password" name="password" placeholder="Password"></p>
<p><label><input type="checkbox" name="burn_after_read"> Burn after read</label></p>
<p><button type="submit">Create</button></p>
</form>
</body></html>{{end}}

{{define "view.html"}}<!DOCTYPE html>
<html><head><title>inkpaste - {{.Paste.Title}}</title></head>
<body>
<h1>{{.Paste.Title}}</h1>
{{if .Paste.Syntax}}<p>Syntax: {{.Paste.Syntax}}</p>{{end}}
{{if .Paste.BurnAfterRead}}<p><em>This paste has now been deleted.</em></p>{{end}}
<pre>{{.Paste.Content}}</pre>
</body></html>{{end}}

{{define "password.html"}}<!DOCTYPE html>
<html><head><title>inkpaste - password required</title></head>
<body>
<h1>This paste is password protected</h1>
<form method="POST" action="/{{.ID}}">
<p><input type="password" name="password" placeholder="Password"></p>
<p><button type="submit">Unlock</button></p>
</form>
</body></html>{{end}}

{{define "404.html"}}<!DOCTYPE html>
<html><head><title>inkpaste - not found</title></head>
<body>
<h1>404</h1>
<p>This paste does not exist, has expired, or has been burned.</p>
<p><a href="/">Home</a></p>
</body></html>{{end}}

{{define "about.html"}}<!DOCTYPE html>
<html><head><title>inkpaste - about</title></head>
<body>
<h1>About</h1>
<p>inkpaste is a small pastebin. Pastes can expire, hide behind a
password, or delete themselves after a single view.</p>
<p><a href="/">Home</a></p>
</body></html>{{end}}

{{define "error.html"}}<!DOCTYPE html>
<html><head><title>inkpaste - error</title></head>
<body>
<h1>Something went wrong</h1>
<p>{{.Error}}</p>
<p><a href="/">Home</a></p>
</body></html>{{end}}
`

// LoadTemplates parses the embedded view templates for the gin router.
func LoadTemplates() *template.Template {
	return template.Must(template.New("inkpaste").Parse(pageTemplates))
}
