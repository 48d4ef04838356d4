package cli

var NewLinePrompterForTest = newLinePrompter
