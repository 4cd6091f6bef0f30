// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NoDescriptorsFoundId Id = iota + 1
	InvalidDescriptorsId
	ConfigLoadFailedId
	AttribGenerationFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue card for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	noDescriptorsFoundIssue = &Issue{
		id: NoDescriptorsFoundId,
		mdMsg: `
# No .about files found!

We searched the given location but found no component descriptors.

## Things you can try:
- Create a descriptor next to the component it documents:
~~~
$ aboutgen init thirdparty/zlib/zlib.about
~~~

- Or point at the directory that actually holds your descriptors:
~~~
$ aboutgen inventory path/to/thirdparty
~~~

## Example descriptor:
~~~
about_resource: zlib.tar.gz
name: zlib
version: 1.2.8
license: zlib
license_file: zlib.LICENSE
~~~`,
	}

	invalidDescriptorsIssue = &Issue{
		id: InvalidDescriptorsId,
		mdMsg: `
# Some descriptors failed validation

Invalid descriptors are excluded from attribution output. Each validation
problem names the file, the field, and the line it concerns.

## Things you can try:
- List every problem in the inventory:
~~~
$ aboutgen check path/to/thirdparty --verbose
~~~
- Make sure every descriptor carries the required fields:
  ` + "`about_resource`" + ` and ` + "`name`" + `.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The config file exists but did not validate against the schema.

## Things you can try:
- Show the configuration aboutgen resolved:
~~~
$ aboutgen config show
~~~
- Regenerate a fresh default config:
~~~
$ aboutgen config init --force
~~~`,
	}

	attribGenerationFailedIssue = &Issue{
		id: AttribGenerationFailedId,
		mdMsg: `
# Attribution generation failed

The inventory loaded, but the attribution document could not be produced.

## Things you can try:
- Check that every ` + "`license_file`" + ` entry points at a readable file
  relative to its descriptor.
- Run with ` + "`--verbose`" + ` to see which texts failed to load.`,
	}

	issues = map[Id]*Issue{
		noDescriptorsFoundIssue.id:     noDescriptorsFoundIssue,
		invalidDescriptorsIssue.id:     invalidDescriptorsIssue,
		configLoadFailedIssue.id:       configLoadFailedIssue,
		attribGenerationFailedIssue.id: attribGenerationFailedIssue,
	}
)

// Get returns the catalog issue for id, or nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}

// Ids returns all catalog issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
