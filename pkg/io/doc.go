// Package io reads and writes diagram snapshots as JSON.
//
// # Overview
//
// A snapshot is the complete state of a [diagram.Diagram]: every node, port,
// edge and label with its ID, type and geometry. The CLI loads a snapshot,
// runs a query or an edit over it, and writes the result back, so the format
// round-trips exactly.
//
// # JSON Format
//
//	{
//	  "version": 1,
//	  "nodes": [
//	    {"id": "glc", "type": "SIMPLE_CHEMICAL", "layout": {"x": 0, "y": 0, "w": 30, "h": 30}},
//	    {"id": "pn", "type": "PROCESS", "orientation": "horizontal",
//	     "layout": {"x": 100, "y": 5, "w": 20, "h": 20}}
//	  ],
//	  "ports": [
//	    {"id": "glc.c", "owner": "glc", "x": 15, "y": 15},
//	    {"id": "pn.in", "owner": "pn", "type": "INPUT_AND_OUTPUT", "x": 90, "y": 15}
//	  ],
//	  "edges": [
//	    {"id": "e1", "type": "CONSUMPTION", "source": "glc.c", "target": "pn.in"}
//	  ],
//	  "labels": [
//	    {"id": "l1", "node": "glc", "type": "NAME_LABEL", "text": "glucose"}
//	  ]
//	}
//
// Types are written by name (see [sbgn.Type.String]). An omitted port type
// is an untyped port. A node's "parent" may name a node listed later in the
// file; containment is resolved after all nodes are read.
//
// # Import
//
// Use [ImportJSON] to read a snapshot from a file path, or [ReadJSON] to
// read from any io.Reader. Both reject unknown fields, type names that do
// not fit their element kind, dangling references and containment cycles.
// Errors carry an INVALID_FORMAT or INVALID_TYPE code from pkg/errors and
// name the offending element.
//
// # Export
//
// Use [ExportJSON] to write a snapshot to a file, or [WriteJSON] to write
// to any io.Writer. Elements are written in the diagram's insertion order.
package io
