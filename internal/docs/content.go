package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with linedoc",
		Content: topicQuickstart,
	},
	{
		Name:    "header",
		Title:   "Block Header Grammar",
		Summary: "How block header lines are parsed",
		Content: topicHeader,
	},
	{
		Name:    "layout",
		Title:   "Output Layout",
		Summary: "How destinations map to folders and files",
		Content: topicLayout,
	},
	{
		Name:    "config",
		Title:   "Settings",
		Summary: "Flags and the .linedoc.yaml settings file",
		Content: topicConfig,
	},
	{
		Name:    "errors",
		Title:   "Error Handling",
		Summary: "What aborts a run and what gets skipped",
		Content: topicErrors,
	},
}

const topicQuickstart = `Quick Start
===========

linedoc scans a source tree for specially marked line blocks and
reassembles them into a folder hierarchy of Markdown documents.

1. Write the settings file (or pass everything as flags):

    linedoc init

2. Mark blocks in your source. A block starts with a marker line
   carrying the destination path and an order number:

    //# .**PERSON** Jan Pogompoel.**INVOICE** 001.**ITEM** line items [0]
    # Borsel
    blou een

   Every line after the marker line, up to the next marker line or the
   end of the file, belongs to the block.

3. Extract:

    linedoc extract -dir src -work docs -start '//#' \
        -path PERSON.INVOICE.ITEM -ext .go

4. Preview without writing:

    linedoc check -dir src -work docs -start '//#' \
        -path PERSON.INVOICE.ITEM -ext .go

CLI Flags
---------

  linedoc extract     Run the full pipeline
  linedoc check       Scan and validate, write nothing
  linedoc init        Write an example .linedoc.yaml
  linedoc docs        List documentation topics
  linedoc docs <t>    Show a documentation topic

Both extract and check accept --report <file> to save a YAML run
report with counts, drops, and conflicts.
`

const topicHeader = `Block Header Grammar
====================

A line starts a block when its trimmed content begins with the marker
prefix (-start). The rest of the line is the header:

    header  := segment+ SP order
    segment := "." "**" LABEL "**" SP VALUE
    order   := "[" DIGITS "]"

Example, with marker '//#':

    //# .**PERSON** Jan.**INVOICE** 001 [2]

Rules
-----

  - LABELs must be a strict ordered prefix of the -path whitelist:
    with -path PERSON.INVOICE.ITEM, the first segment must be PERSON,
    the second INVOICE, the third ITEM. Depth is capped at the
    whitelist length.
  - VALUE runs until the next segment marker or the order token and is
    trimmed. Dots inside values are fine; only ".**" starts a new
    segment.
  - The order token must be the last token and must parse as an
    unsigned 16-bit integer (0 to 65535). It positions the block
    within its document; order numbers must be unique per destination.

A header that breaks any rule drops its whole block (header and body)
with a warning, and scanning continues at the next marker line.
`

const topicLayout = `Output Layout
=============

Each block's segments map to a path under the work root (-work). All
segments but the last become nested folders named "LABEL value"; the
last becomes a Markdown file named "LABEL value.md".

    .**PERSON** Jan.**INVOICE** 001.**ITEM** line items [0]

becomes

    <work>/PERSON Jan/INVOICE 001/ITEM line items.md

All blocks with the same segments land in the same file, sorted by
order number, each rendered as:

    [SOURCE FILE:](file:///path/to/source.go) LINE: 12

    ...body lines, verbatim...

Documents are rebuilt from scratch on every run and replace whatever
was at their path. Blocks are independent of discovery order: only the
order number decides placement.
`

const topicConfig = `Settings
========

Five settings drive a run. Each is a flag and a key in the optional
settings file (default .linedoc.yaml, override with --config):

  flag      yaml     meaning
  -dir      dir      scan root (required)
  -work     work     destination root, created if absent (required)
  -start    start    marker prefix, non-empty (required)
  -path     path     dot-separated label whitelist (required)
  -ext      ext      file extension filter, case-sensitive suffix
                     match (required)

Flags override file values. Example .linedoc.yaml:

    dir: src
    work: docs
    start: '//#'
    path: PERSON.INVOICE.ITEM
    ext: .go
`

const topicErrors = `Error Handling
==============

Fatal (run aborts, non-zero exit):

  - missing or invalid settings
  - unreadable scan root
  - uncreatable or unwritable work root

Recoverable (logged, run continues):

  - a single file that cannot be read or is not valid UTF-8 text:
    the file is skipped
  - a block header that fails to parse: the block and its body are
    dropped
  - two blocks with the same order number at one destination: that
    destination is reported and omitted; every other document is
    still written

A document is only ever written whole, after all of its blocks are
known and validated.
`
