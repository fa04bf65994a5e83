/*
Package topofile reads and writes topology documents for the linknet CLI
and any embedding program that keeps its topology in a file.

Two YAML shapes are accepted. The canonical mapping form nests each peer
name over the mapping of its children:

	hubA:
	  lhubA:
	    lleafA:
	    lleafB:
	  leafA:
	hubB:
	  leafAA:

The list form spells the same structure out as name/peers records, which is
friendlier to generated documents:

	- name: hubA
	  peers:
	    - name: lhubA
	      peers:
	        - name: lleafA
	        - name: lleafB

Loading produces a tree.Tree; validation of name uniqueness happens when
the tree is handed to linknet.New, not here.
*/
package topofile
