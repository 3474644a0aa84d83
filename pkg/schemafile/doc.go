// Package schemafile declares records in YAML instead of Go code.
//
// A document lists records in dependency order. Each field names a type
// expression and an optional chain of validators from the rules catalog:
//
//	records:
//	  - name: Item
//	    fields:
//	      - name: sku
//	        type: str
//	        validators: [strip, upper, not_blank]
//	      - name: qty
//	        type: int
//	        validators: [positive]
//	  - name: Order
//	    fields:
//	      - name: id
//	        type: int
//	      - name: items
//	        type: list[Item]
//	        validators: [not_empty_list]
//	      - name: tags
//	        type: list[str]
//	        item_validators: [lower]
//
// Type expressions are any, str, int, float, bool, list[<expr>] and the names of
// records declared earlier in the same document. validators apply to the field
// value, item_validators apply to each element of a list field.
//
// Errors carry the source line of the offending record or field:
//
//	reg, err := schemafile.LoadFile("records.yaml")
//	if err != nil {
//		return err
//	}
//	order, err := reg.Lookup("Order")
package schemafile
