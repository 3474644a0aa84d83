package schemafile

import "gopkg.in/yaml.v3"

// lineIndex remembers source lines of record and field entries for error messages.
type lineIndex struct {
	records []int
	fields  [][]int
}

func indexLines(root *yaml.Node) lineIndex {
	var idx lineIndex
	seq := mappingValue(documentBody(root), "records")
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return idx
	}
	for _, rec := range seq.Content {
		idx.records = append(idx.records, rec.Line)
		var lines []int
		if fields := mappingValue(rec, "fields"); fields != nil && fields.Kind == yaml.SequenceNode {
			for _, f := range fields.Content {
				lines = append(lines, f.Line)
			}
		}
		idx.fields = append(idx.fields, lines)
	}
	return idx
}

func (idx lineIndex) record(i int) int {
	if i < len(idx.records) {
		return idx.records[i]
	}
	return 0
}

func (idx lineIndex) field(i, j int) int {
	if i < len(idx.fields) && j < len(idx.fields[i]) {
		return idx.fields[i][j]
	}
	return idx.record(i)
}

func documentBody(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
